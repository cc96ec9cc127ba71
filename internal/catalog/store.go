// Package catalog holds the reference data the quoting tools draw from:
// static furniture, professional and supplier lists, plus the
// admin-editable flower catalog persisted as a key→JSON blob in the
// local database.
package catalog

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "florada/internal/errors"
	"florada/internal/logger"
	"florada/internal/models"
)

// flowersBlobName keys the flower catalog inside the blob store.
const flowersBlobName = "flowers"

// Store serves catalog reads and persists admin edits to the flower
// catalog. The in-memory flower list is the working copy; every write
// goes straight to the blob store. Single-user local state, so
// last-writer-wins under the store mutex is enough.
type Store struct {
	db *gorm.DB

	mu      sync.RWMutex
	flowers []models.Flower
}

// NewStore loads the flower catalog from the blob store, falling back to
// the bundled default list when nothing has been persisted yet.
func NewStore(db *gorm.DB) (*Store, error) {
	s := &Store{db: db}

	var blob models.CatalogBlob
	err := db.First(&blob, "name = ?", flowersBlobName).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.flowers = DefaultFlowers()
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		var flowers []models.Flower
		if jsonErr := json.Unmarshal(blob.Data, &flowers); jsonErr != nil {
			// Corrupt blob is a soft failure: fall back to defaults.
			logger.Get().Warnw("flower catalog blob unreadable, using defaults", "error", jsonErr)
			s.flowers = DefaultFlowers()
		} else {
			s.flowers = flowers
		}
	}

	return s, nil
}

// persistFlowers writes the current flower list to the blob store.
// Called with s.mu held.
func (s *Store) persistFlowers() error {
	data, err := json.Marshal(s.flowers)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	blob := models.CatalogBlob{Name: flowersBlobName, Data: data}
	if err := s.db.Save(&blob).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Flowers returns a copy of the current flower catalog in insertion order.
func (s *Store) Flowers() []models.Flower {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Flower, len(s.flowers))
	copy(out, s.flowers)
	return out
}

// FlowerByID finds a flower by its catalog id.
func (s *Store) FlowerByID(id int) (models.Flower, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.flowers {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Flower{}, apperrors.ErrFlowerNotFound
}

// AddFlower appends a new flower with the next free id (max+1) and
// persists the catalog.
func (s *Store) AddFlower(name string, price decimal.Decimal, imageURL *string) (models.Flower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := 0
	for _, f := range s.flowers {
		if f.ID > nextID {
			nextID = f.ID
		}
	}
	flower := models.Flower{ID: nextID + 1, Name: name, Price: price, ImageURL: imageURL}
	s.flowers = append(s.flowers, flower)

	if err := s.persistFlowers(); err != nil {
		return models.Flower{}, err
	}
	return flower, nil
}

// UpdateFlower replaces name/price/image of an existing flower and
// persists the catalog.
func (s *Store) UpdateFlower(updated models.Flower) (models.Flower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.flowers {
		if f.ID == updated.ID {
			s.flowers[i] = updated
			if err := s.persistFlowers(); err != nil {
				return models.Flower{}, err
			}
			return updated, nil
		}
	}
	return models.Flower{}, apperrors.ErrFlowerNotFound
}

// RemoveFlower deletes a flower by id, preserving the order of the
// remaining entries, and persists the catalog.
func (s *Store) RemoveFlower(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.flowers {
		if f.ID == id {
			s.flowers = append(s.flowers[:i], s.flowers[i+1:]...)
			return s.persistFlowers()
		}
	}
	return apperrors.ErrFlowerNotFound
}

// flowerExport is the download format for the admin flower catalog.
type flowerExport struct {
	Flowers []models.Flower `json:"flowers"`
}

// ExportFlowers serializes the flower catalog as a downloadable JSON
// document. Importing the result reproduces the identical ordered list.
func (s *Store) ExportFlowers() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(flowerExport{Flowers: s.flowers}, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// ImportFlowers replaces the flower catalog with the given export
// document and persists it.
func (s *Store) ImportFlowers(data []byte) error {
	var doc flowerExport
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperrors.Wrap(apperrors.ErrBadCatalogImport, err)
	}
	if doc.Flowers == nil {
		return apperrors.WithMessage(apperrors.ErrBadCatalogImport, "missing flowers list")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flowers = doc.Flowers
	return s.persistFlowers()
}

// Furniture returns the static furniture collection.
func (s *Store) Furniture() []models.ResourceItem {
	return FurnitureItems()
}

// FurnitureByID finds a furniture item in the static collection.
func (s *Store) FurnitureByID(id string) (models.ResourceItem, error) {
	for _, item := range FurnitureItems() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.ResourceItem{}, apperrors.ErrResourceNotFound
}

// ProfessionalList returns the static staff roster.
func (s *Store) ProfessionalList() []models.Professional {
	return Professionals()
}

// ProfessionalByID finds a professional in the static roster.
func (s *Store) ProfessionalByID(id int) (models.Professional, error) {
	for _, p := range Professionals() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Professional{}, apperrors.ErrProfessionalNotFound
}

// SupplierList returns the static supplier list, optionally filtered by
// category ("" means all).
func (s *Store) SupplierList(category string) []models.Supplier {
	all := Suppliers()
	if category == "" {
		return all
	}
	var out []models.Supplier
	for _, sup := range all {
		if sup.Category == category {
			out = append(out, sup)
		}
	}
	return out
}

// SupplierItem finds one item inside a supplier.
func (s *Store) SupplierItem(supplierID int, itemID string) (models.Supplier, models.SupplierItem, error) {
	for _, sup := range Suppliers() {
		if sup.ID != supplierID {
			continue
		}
		for _, item := range sup.Items {
			if item.ID == itemID {
				return sup, item, nil
			}
		}
		return models.Supplier{}, models.SupplierItem{}, apperrors.ErrSupplierItemNotFound
	}
	return models.Supplier{}, models.SupplierItem{}, apperrors.ErrSupplierNotFound
}
