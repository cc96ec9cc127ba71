package services

import (
	"github.com/shopspring/decimal"

	"florada/internal/availability"
	"florada/internal/catalog"
	"florada/internal/models"
	"florada/internal/pagination"
)

// catalogService handles catalog reads and the admin flower CRUD.
type catalogService struct {
	store *catalog.Store
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(store *catalog.Store) CatalogServicer {
	return &catalogService{store: store}
}

// ListFlowers returns a page of the flower catalog.
func (s *catalogService) ListFlowers(page pagination.PageRequest) pagination.PageResponse[models.Flower] {
	page.Defaults()
	return pagination.Slice(s.store.Flowers(), page)
}

// GetFlower returns one flower by ID.
func (s *catalogService) GetFlower(id int) (models.Flower, error) {
	return s.store.FlowerByID(id)
}

// CreateFlower adds a flower to the catalog.
func (s *catalogService) CreateFlower(name string, price decimal.Decimal, imageURL *string) (models.Flower, error) {
	return s.store.AddFlower(name, price, imageURL)
}

// UpdateFlower replaces a flower's editable fields.
func (s *catalogService) UpdateFlower(id int, name string, price decimal.Decimal, imageURL *string) (models.Flower, error) {
	return s.store.UpdateFlower(models.Flower{ID: id, Name: name, Price: price, ImageURL: imageURL})
}

// DeleteFlower removes a flower from the catalog.
func (s *catalogService) DeleteFlower(id int) error {
	return s.store.RemoveFlower(id)
}

// ExportFlowers serializes the catalog for backup.
func (s *catalogService) ExportFlowers() ([]byte, error) {
	return s.store.ExportFlowers()
}

// ImportFlowers replaces the catalog from an exported backup.
func (s *catalogService) ImportFlowers(data []byte) error {
	return s.store.ImportFlowers(data)
}

// ListFurniture returns the furniture collection, filtered by ownership
// and category when given. When a period is given, each item is annotated
// with whether it is free for that whole period.
func (s *catalogService) ListFurniture(ownership, category string, period *availability.DateRange) []FurnitureAvailability {
	items := s.store.Furniture()
	out := make([]FurnitureAvailability, 0, len(items))
	for _, item := range items {
		if ownership != "" && item.Ownership != models.Ownership(ownership) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		fa := FurnitureAvailability{ResourceItem: item}
		if period != nil {
			available := availability.IsAvailable(*period, item.Reservations)
			fa.Available = &available
		}
		out = append(out, fa)
	}
	return out
}

// ListProfessionals returns the professional roster with the same optional
// availability annotation.
func (s *catalogService) ListProfessionals(period *availability.DateRange) []ProfessionalAvailability {
	pros := s.store.ProfessionalList()
	out := make([]ProfessionalAvailability, 0, len(pros))
	for _, p := range pros {
		pa := ProfessionalAvailability{Professional: p}
		if period != nil {
			available := availability.IsAvailable(*period, availability.BookingRanges(p.Bookings))
			pa.Available = &available
		}
		out = append(out, pa)
	}
	return out
}

// ListSuppliers returns suppliers, optionally filtered by category.
func (s *catalogService) ListSuppliers(category string) []models.Supplier {
	return s.store.SupplierList(category)
}
