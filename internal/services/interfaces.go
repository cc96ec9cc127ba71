package services

import (
	"context"

	"github.com/shopspring/decimal"

	"florada/internal/availability"
	"florada/internal/messaging"
	"florada/internal/models"
	"florada/internal/pagination"
	"florada/internal/session"
	"florada/internal/webhook"
)

// PhoneVerifier is the slice of the messaging gateway registration needs.
type PhoneVerifier interface {
	ValidateNumber(ctx context.Context, phone string) (bool, error)
	FetchProfile(ctx context.Context, phone string) *messaging.Profile
}

// OrderSubmitter posts confirmed orders to the external automation hook.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, payload webhook.OrderPayload) error
}

// RegisterInput is the data collected by the registration form.
type RegisterInput struct {
	Name      string
	Phone     string
	EventName string
	EventDate string
}

// AuthServicer defines the contract for registration and session identity.
type AuthServicer interface {
	Register(ctx context.Context, input RegisterInput) (*session.Session, string, error)
	Profile(sessionID string) (models.UserInfo, error)
	Logout(sessionID string)
}

// FurnitureAvailability pairs a catalog item with its availability for a
// requested period.
type FurnitureAvailability struct {
	models.ResourceItem
	Available *bool `json:"available,omitempty"`
}

// ProfessionalAvailability pairs a professional with availability for a
// requested period.
type ProfessionalAvailability struct {
	models.Professional
	Available *bool `json:"available,omitempty"`
}

// CatalogServicer defines the contract for catalog reads and the admin
// flower CRUD.
type CatalogServicer interface {
	ListFlowers(page pagination.PageRequest) pagination.PageResponse[models.Flower]
	GetFlower(id int) (models.Flower, error)
	CreateFlower(name string, price decimal.Decimal, imageURL *string) (models.Flower, error)
	UpdateFlower(id int, name string, price decimal.Decimal, imageURL *string) (models.Flower, error)
	DeleteFlower(id int) error
	ExportFlowers() ([]byte, error)
	ImportFlowers(data []byte) error

	ListFurniture(ownership, category string, period *availability.DateRange) []FurnitureAvailability
	ListProfessionals(period *availability.DateRange) []ProfessionalAvailability
	ListSuppliers(category string) []models.Supplier
}

// RentalInput is one furniture rental request.
type RentalInput struct {
	ItemID    string
	Quantity  int
	StartDate string
	EndDate   string
	Location  string
}

// ReserveInput books a professional for a period.
type ReserveInput struct {
	ProfessionalID int
	StartDate      string
	EndDate        string
}

// BudgetServicer defines the contract for every budget session mutation.
type BudgetServicer interface {
	Snapshot(sessionID string) (*session.Session, error)

	StartArrangement(sessionID string, arrangementType models.ArrangementType) error
	AddFlower(sessionID string, flowerID, quantity int) error
	RemoveFlower(sessionID string, index int) error
	SaveArrangement(sessionID string, quantity int) (bool, error)
	NewArrangement(sessionID string) error
	RemoveArrangement(sessionID string, index int) error

	AddRental(sessionID string, input RentalInput) error
	RemoveRental(sessionID string, index int) error

	AddLaborRow(sessionID string, section session.LaborSection) error
	UpdateLaborRow(sessionID string, section session.LaborSection, index int, patch session.LaborPatch) error
	RemoveLaborRow(sessionID string, section session.LaborSection, index int) error
	ReserveProfessional(sessionID string, input ReserveInput) error
	SetDiscount(sessionID string, pct decimal.Decimal) error

	UpdateWood(sessionID string, patch session.MaterialPatch) error
	UpdateMaterial(sessionID string, index int, patch session.MaterialPatch) error
	UpdateCleaning(sessionID string, index int, patch session.MaterialPatch) error
	AddSupplierItem(sessionID string, supplierID int, itemID string) error
}

// QuoteServicer renders the printable documents for a session.
type QuoteServicer interface {
	RenderFull(sessionID string, showPrices bool) ([]byte, error)
	RenderRental(sessionID string) ([]byte, error)
	RenderScenography(sessionID string) ([]byte, error)
}

// OrderServicer confirms the arrangement order and forwards it.
type OrderServicer interface {
	SubmitOrder(ctx context.Context, sessionID string) error
}
