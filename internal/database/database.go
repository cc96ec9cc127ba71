// Package database manages the local SQLite store that backs the
// editable catalogs.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"florada/internal/models"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens (or creates) the SQLite database at path.
func NewManager(path string) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return &Manager{db: db}, nil
}

// Migrate creates or updates the schema for the catalog blob store.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(&models.CatalogBlob{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the underlying database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
