package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"florada/internal/catalog"
	"florada/internal/models"
	"florada/internal/session"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestStore creates a catalog store backed by the given test database.
func CreateTestStore(t *testing.T, db *gorm.DB) *catalog.Store {
	t.Helper()

	store, err := catalog.NewStore(db)
	if err != nil {
		t.Fatalf("failed to create catalog store: %v", err)
	}
	return store
}

// CreateTestSession registers a session for a uniquely named test user.
func CreateTestSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	n := nextID()
	return store.Create(models.UserInfo{
		Name:      fmt.Sprintf("Cliente %d", n),
		Phone:     fmt.Sprintf("5531999%06d", n),
		EventName: fmt.Sprintf("Evento %d", n),
		EventDate: "2025-12-20",
	})
}

// FlowerLine builds a flower line with the given quantity and unit price.
func FlowerLine(name string, quantity int, price string) models.FlowerLine {
	line := models.FlowerLine{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(price),
	}
	line.Recompute()
	return line
}

// LaborLine builds a labor row with the given quantity and unit value.
func LaborLine(name string, quantity int, unit, unitValue string) models.LaborLine {
	line := models.LaborLine{
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		UnitValue: decimal.RequireFromString(unitValue),
	}
	line.Recompute()
	return line
}
