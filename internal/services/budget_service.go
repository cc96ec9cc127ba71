package services

import (
	"github.com/shopspring/decimal"

	"florada/internal/availability"
	"florada/internal/catalog"
	apperrors "florada/internal/errors"
	"florada/internal/models"
	"florada/internal/pricing"
	"florada/internal/session"
)

// budgetService handles every budget session mutation.
type budgetService struct {
	sessions   *session.Store
	catalog    *catalog.Store
	freightFee decimal.Decimal
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(sessions *session.Store, cat *catalog.Store, freightFee decimal.Decimal) BudgetServicer {
	return &budgetService{
		sessions:   sessions,
		catalog:    cat,
		freightFee: freightFee,
	}
}

// Snapshot returns the current session state for rendering.
func (s *budgetService) Snapshot(sessionID string) (*session.Session, error) {
	return s.sessions.Get(sessionID)
}

// StartArrangement selects the arrangement category and enters building.
func (s *budgetService) StartArrangement(sessionID string, arrangementType models.ArrangementType) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.StartArrangement(arrangementType)
		return nil
	})
}

// AddFlower resolves the catalog flower and appends it to the in-progress
// arrangement.
func (s *budgetService) AddFlower(sessionID string, flowerID, quantity int) error {
	flower, err := s.catalog.FlowerByID(flowerID)
	if err != nil {
		return err
	}
	if quantity < 1 {
		quantity = 1
	}
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.AddFlower(models.FlowerLine{
			Name:      flower.Name,
			Quantity:  quantity,
			UnitPrice: flower.Price,
			ImageURL:  flower.ImageURL,
		})
	})
}

// RemoveFlower drops the in-progress flower line at index.
func (s *budgetService) RemoveFlower(sessionID string, index int) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.RemoveFlower(index)
	})
}

// SaveArrangement finalizes the in-progress arrangement. Saving with no
// flowers reports saved=false without error.
func (s *budgetService) SaveArrangement(sessionID string, quantity int) (bool, error) {
	var saved bool
	err := s.sessions.Do(sessionID, func(sess *session.Session) error {
		var saveErr error
		saved, saveErr = sess.SaveArrangement(quantity)
		return saveErr
	})
	return saved, err
}

// NewArrangement returns to category selection for another arrangement.
func (s *budgetService) NewArrangement(sessionID string) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.NewArrangement()
		return nil
	})
}

// RemoveArrangement drops the saved arrangement at index.
func (s *budgetService) RemoveArrangement(sessionID string, index int) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.RemoveArrangement(index)
	})
}

// AddRental checks the item's availability for the requested period and
// appends a rental line. Freight applies only when a delivery location
// was given.
func (s *budgetService) AddRental(sessionID string, input RentalInput) error {
	item, err := s.catalog.FurnitureByID(input.ItemID)
	if err != nil {
		return err
	}

	period, err := availability.ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	if !period.Valid() {
		return apperrors.ErrInvalidPeriod
	}
	if !availability.IsAvailable(period, item.Reservations) {
		return apperrors.ErrResourceUnavailable
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	freight := decimal.Zero
	if input.Location != "" {
		freight = s.freightFee
	}

	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.AddRentalLine(models.RentalLine{
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			DailyRate: item.DailyRate,
			Quantity:  quantity,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Days:      pricing.InclusiveRangeDays(period),
			Freight:   freight,
			Location:  input.Location,
			Owned:     item.Ownership == models.OwnershipOwned,
		})
		return nil
	})
}

// RemoveRental drops the rental line at index.
func (s *budgetService) RemoveRental(sessionID string, index int) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.RemoveRentalLine(index)
	})
}

// AddLaborRow appends a blank row to a labor section.
func (s *budgetService) AddLaborRow(sessionID string, section session.LaborSection) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.AddLaborRow(section)
	})
}

// UpdateLaborRow patches a labor row.
func (s *budgetService) UpdateLaborRow(sessionID string, section session.LaborSection, index int, patch session.LaborPatch) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.UpdateLaborRow(section, index, patch)
	})
}

// RemoveLaborRow drops a labor row.
func (s *budgetService) RemoveLaborRow(sessionID string, section session.LaborSection, index int) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.RemoveLaborRow(section, index)
	})
}

// ReserveProfessional checks the professional's bookings for the period
// and appends a readonly workers row priced at one daily rate per
// inclusive day.
func (s *budgetService) ReserveProfessional(sessionID string, input ReserveInput) error {
	pro, err := s.catalog.ProfessionalByID(input.ProfessionalID)
	if err != nil {
		return err
	}

	period, err := availability.ParseRange(input.StartDate, input.EndDate)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	if !period.Valid() {
		return apperrors.ErrInvalidPeriod
	}
	if !availability.IsAvailable(period, availability.BookingRanges(pro.Bookings)) {
		return apperrors.ErrProfessionalUnavailable
	}

	days := pricing.InclusiveRangeDays(period)
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.ReserveProfessional(pro.Name, pro.DailyRate, days)
		return nil
	})
}

// SetDiscount records the labor discount percentage.
func (s *budgetService) SetDiscount(sessionID string, pct decimal.Decimal) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.SetLaborDiscount(pct)
		return nil
	})
}

// UpdateWood patches the wood line.
func (s *budgetService) UpdateWood(sessionID string, patch session.MaterialPatch) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.UpdateWood(patch)
		return nil
	})
}

// UpdateMaterial patches the scenography material row at index.
func (s *budgetService) UpdateMaterial(sessionID string, index int, patch session.MaterialPatch) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.UpdateMaterial(index, patch)
	})
}

// UpdateCleaning patches the cleaning material row at index.
func (s *budgetService) UpdateCleaning(sessionID string, index int, patch session.MaterialPatch) error {
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		return sess.UpdateCleaning(index, patch)
	})
}

// AddSupplierItem copies a supplier catalog item into the scenography
// lists at quantity zero.
func (s *budgetService) AddSupplierItem(sessionID string, supplierID int, itemID string) error {
	supplier, item, err := s.catalog.SupplierItem(supplierID, itemID)
	if err != nil {
		return err
	}
	return s.sessions.Do(sessionID, func(sess *session.Session) error {
		sess.AddSupplierMaterial(supplier.Category, item)
		return nil
	})
}
