package models

import (
	"github.com/shopspring/decimal"

	"florada/internal/availability"
)

// Flower is one entry of the admin-editable flower catalog. This is the
// only catalog persisted locally; everything else is static reference data.
type Flower struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL *string         `json:"image_url"`
}

// Ownership says whether a furniture item belongs to the house collection
// or to a third-party partner.
type Ownership string

const (
	OwnershipOwned      Ownership = "owned"
	OwnershipThirdParty Ownership = "third_party"
)

// ResourceItem is a rentable furniture item with its reservation agenda.
type ResourceItem struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Category     string                   `json:"category"`
	Ownership    Ownership                `json:"ownership"`
	DailyRate    decimal.Decimal          `json:"daily_rate"`
	ImageURL     *string                  `json:"image_url"`
	Reservations []availability.DateRange `json:"reservations"`
}

// Professional is a bookable worker with a daily rate and an agenda of
// labelled bookings.
type Professional struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	Role      string                 `json:"role"`
	DailyRate decimal.Decimal        `json:"daily_rate"`
	ImageURL  *string                `json:"image_url"`
	Bookings  []availability.Booking `json:"bookings"`
}

// SupplierItem is one purchasable material offered by a supplier.
type SupplierItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Value decimal.Decimal `json:"value"`
}

// Supplier groups purchasable materials under a category (Madeira,
// Cenografia or Limpeza).
type Supplier struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Items    []SupplierItem `json:"items"`
}

// Supplier categories.
const (
	SupplierMadeira    = "Madeira"
	SupplierCenografia = "Cenografia"
	SupplierLimpeza    = "Limpeza"
)
