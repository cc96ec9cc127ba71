package models

import "time"

// CatalogBlob is the key→JSON-blob row backing the local catalog store.
// Each editable catalog is stored whole under its name; writes replace
// the blob (last-writer-wins, single-user local state).
type CatalogBlob struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Data      []byte    `gorm:"not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
