// Package session holds the per-user budget session: the in-memory
// working set of line items and totals for the active quoting activity,
// across the four budget types.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"florada/internal/catalog"
	apperrors "florada/internal/errors"
	"florada/internal/models"
	"florada/internal/pricing"
	"florada/internal/uuid"
)

// Phase tracks where the flower-arrangement flow is. The other three
// budget types are flat forms and carry no phase machine.
type Phase string

const (
	// PhaseSelectingType: choosing which arrangement category to build.
	PhaseSelectingType Phase = "selecting_type"
	// PhaseBuilding: adding and removing flowers on the current arrangement.
	PhaseBuilding Phase = "building"
	// PhaseReviewing: the calculator step, looking at all saved arrangements.
	PhaseReviewing Phase = "reviewing"
)

// Labor groups the three labor sub-sections and the discount percentage.
type Labor struct {
	Workers  []models.LaborLine `json:"workers"`
	Lodging  []models.LaborLine `json:"lodging"`
	Food     []models.LaborLine `json:"food"`
	Discount decimal.Decimal    `json:"discount"`
}

// LaborSection names one of the three labor sub-lists.
type LaborSection string

const (
	SectionWorkers LaborSection = "workers"
	SectionLodging LaborSection = "lodging"
	SectionFood    LaborSection = "food"
)

// ValidLaborSection reports whether s names a labor sub-list.
func ValidLaborSection(s string) bool {
	switch LaborSection(s) {
	case SectionWorkers, SectionLodging, SectionFood:
		return true
	}
	return false
}

// Scenography groups the distinguished wood line with the material and
// cleaning lists.
type Scenography struct {
	Wood      models.MaterialLine   `json:"wood"`
	Materials []models.MaterialLine `json:"materials"`
	Cleaning  []models.MaterialLine `json:"cleaning"`
}

// Session is one user's active quoting workspace. All mutation goes
// through the Store, which serializes access per session.
type Session struct {
	ID        string          `json:"id"`
	User      models.UserInfo `json:"user"`
	CreatedAt time.Time       `json:"created_at"`

	// Flower-arrangement flow
	Phase           Phase                  `json:"phase"`
	ArrangementType models.ArrangementType `json:"arrangement_type"`
	Flowers         []models.FlowerLine    `json:"flowers"`
	Arrangements    []models.Arrangement   `json:"arrangements"`

	// Flat budget forms
	Rental      []models.RentalLine `json:"rental"`
	Labor       Labor               `json:"labor"`
	Scenography Scenography         `json:"scenography"`
}

// New creates a fresh session for a validated user, with the flower flow
// at type selection, seeded scenography rows, and one blank row in each
// labor section.
func New(user models.UserInfo) *Session {
	s := &Session{
		ID:              uuid.New(),
		User:            user,
		CreatedAt:       time.Now(),
		Phase:           PhaseSelectingType,
		ArrangementType: models.ArrangementMesa,
		Scenography: Scenography{
			Wood:      catalog.DefaultWoodLine(),
			Materials: catalog.DefaultScenographyMaterials(),
			Cleaning:  catalog.DefaultCleaningMaterials(),
		},
	}
	s.EnsureLaborRows()
	return s
}

// EnsureLaborRows guarantees at least one editable row in each labor
// sub-section. The minimum-row default applies to workers, lodging and
// food only, never to the other budget types.
func (s *Session) EnsureLaborRows() {
	if len(s.Labor.Workers) == 0 {
		s.Labor.Workers = append(s.Labor.Workers, models.LaborLine{Unit: models.UnitDiaria})
	}
	if len(s.Labor.Lodging) == 0 {
		s.Labor.Lodging = append(s.Labor.Lodging, models.LaborLine{Unit: models.UnitDiaria})
	}
	if len(s.Labor.Food) == 0 {
		s.Labor.Food = append(s.Labor.Food, models.LaborLine{Unit: models.UnitUND})
	}
}

// Clone returns a deep copy of the session. Readers (snapshots, quote
// rendering, order payloads) work on clones so they never observe a
// mutation in progress.
func (s *Session) Clone() *Session {
	c := *s

	c.Flowers = append([]models.FlowerLine(nil), s.Flowers...)
	c.Arrangements = make([]models.Arrangement, len(s.Arrangements))
	for i, a := range s.Arrangements {
		a.Flowers = append([]models.FlowerLine(nil), a.Flowers...)
		c.Arrangements[i] = a
	}
	c.Rental = append([]models.RentalLine(nil), s.Rental...)
	c.Labor.Workers = append([]models.LaborLine(nil), s.Labor.Workers...)
	c.Labor.Lodging = append([]models.LaborLine(nil), s.Labor.Lodging...)
	c.Labor.Food = append([]models.LaborLine(nil), s.Labor.Food...)
	c.Scenography.Materials = append([]models.MaterialLine(nil), s.Scenography.Materials...)
	c.Scenography.Cleaning = append([]models.MaterialLine(nil), s.Scenography.Cleaning...)

	return &c
}

// ---- Flower-arrangement flow ----

// StartArrangement picks the arrangement category and moves the flow to
// the building phase.
func (s *Session) StartArrangement(t models.ArrangementType) {
	s.ArrangementType = t
	s.Phase = PhaseBuilding
}

// AddFlower appends one flower line to the in-progress arrangement,
// recomputing its stored total. Appending never deduplicates. Only legal
// while building.
func (s *Session) AddFlower(line models.FlowerLine) error {
	if s.Phase != PhaseBuilding {
		return apperrors.ErrWrongPhase
	}
	line.Recompute()
	s.Flowers = append(s.Flowers, line)
	return nil
}

// RemoveFlower removes the in-progress flower line at index, preserving
// the order of the remaining lines.
func (s *Session) RemoveFlower(index int) error {
	if s.Phase != PhaseBuilding {
		return apperrors.ErrWrongPhase
	}
	if index < 0 || index >= len(s.Flowers) {
		return apperrors.ErrLineNotFound
	}
	s.Flowers = append(s.Flowers[:index], s.Flowers[index+1:]...)
	return nil
}

// InProgressTotal sums the in-progress flower line totals.
func (s *Session) InProgressTotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(s.Flowers))
	for i, f := range s.Flowers {
		totals[i] = f.LineTotal()
	}
	return pricing.ArrangementTotal(totals, 1)
}

// SaveArrangement finalizes the in-progress arrangement with the given
// copy count, clears the working flower list, resets the type selection
// and advances the flow to the review step. Saving with no flower lines
// is a no-op, not an error.
func (s *Session) SaveArrangement(quantity int) (bool, error) {
	if s.Phase != PhaseBuilding {
		return false, apperrors.ErrWrongPhase
	}
	if len(s.Flowers) == 0 {
		return false, nil
	}
	if quantity < 1 {
		quantity = 1
	}

	flowers := make([]models.FlowerLine, len(s.Flowers))
	copy(flowers, s.Flowers)

	s.Arrangements = append(s.Arrangements, models.Arrangement{
		Type:      s.ArrangementType,
		Quantity:  quantity,
		UnitPrice: s.InProgressTotal(),
		Flowers:   flowers,
	})

	s.Flowers = nil
	s.ArrangementType = models.ArrangementMesa
	s.Phase = PhaseReviewing
	return true, nil
}

// NewArrangement returns from the review step to type selection so the
// user can assemble another arrangement.
func (s *Session) NewArrangement() {
	s.Phase = PhaseSelectingType
}

// RemoveArrangement removes the saved arrangement at index, preserving
// the order of the rest.
func (s *Session) RemoveArrangement(index int) error {
	if index < 0 || index >= len(s.Arrangements) {
		return apperrors.ErrLineNotFound
	}
	s.Arrangements = append(s.Arrangements[:index], s.Arrangements[index+1:]...)
	return nil
}

// ArrangementsTotal sums every saved arrangement's total, computed from
// current line data.
func (s *Session) ArrangementsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range s.Arrangements {
		sum = sum.Add(a.LineTotal())
	}
	return sum
}

// ---- Furniture rental cart ----

// AddRentalLine appends a rental line, recomputing its total.
func (s *Session) AddRentalLine(line models.RentalLine) {
	line.Recompute()
	s.Rental = append(s.Rental, line)
}

// RemoveRentalLine removes the rental line at index, preserving order.
func (s *Session) RemoveRentalLine(index int) error {
	if index < 0 || index >= len(s.Rental) {
		return apperrors.ErrLineNotFound
	}
	s.Rental = append(s.Rental[:index], s.Rental[index+1:]...)
	return nil
}

// RentalTotal sums the rental cart, computed from current line data.
func (s *Session) RentalTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Rental {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// ---- Labor ----

// laborList returns a pointer to the requested sub-list.
func (s *Session) laborList(section LaborSection) *[]models.LaborLine {
	switch section {
	case SectionWorkers:
		return &s.Labor.Workers
	case SectionLodging:
		return &s.Labor.Lodging
	case SectionFood:
		return &s.Labor.Food
	}
	return nil
}

// AddLaborRow appends a blank row to the given section.
func (s *Session) AddLaborRow(section LaborSection) error {
	list := s.laborList(section)
	if list == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown labor section")
	}
	unit := models.UnitDiaria
	if section == SectionFood {
		unit = models.UnitUND
	}
	*list = append(*list, models.LaborLine{Unit: unit})
	return nil
}

// LaborPatch carries the fields of one labor row update. Nil fields are
// left untouched; quantity and unit-value changes recompute the total.
type LaborPatch struct {
	Name      *string
	Quantity  *int
	Unit      *string
	UnitValue *decimal.Decimal
}

// UpdateLaborRow patches the row at index in the given section.
func (s *Session) UpdateLaborRow(section LaborSection, index int, patch LaborPatch) error {
	list := s.laborList(section)
	if list == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown labor section")
	}
	if index < 0 || index >= len(*list) {
		return apperrors.ErrLineNotFound
	}

	row := &(*list)[index]
	if patch.Name != nil && !row.ReadonlyName {
		row.Name = *patch.Name
	}
	if patch.Unit != nil {
		row.Unit = *patch.Unit
	}
	if patch.Quantity != nil {
		q := *patch.Quantity
		if q < 0 {
			q = 0
		}
		row.Quantity = q
	}
	if patch.UnitValue != nil {
		v := *patch.UnitValue
		if v.IsNegative() {
			v = decimal.Zero
		}
		row.UnitValue = v
	}
	if patch.Quantity != nil || patch.UnitValue != nil {
		row.Recompute()
	}
	return nil
}

// RemoveLaborRow removes the row at index, preserving order, then
// restores the minimum-row default when the section empties out.
func (s *Session) RemoveLaborRow(section LaborSection, index int) error {
	list := s.laborList(section)
	if list == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown labor section")
	}
	if index < 0 || index >= len(*list) {
		return apperrors.ErrLineNotFound
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	s.EnsureLaborRows()
	return nil
}

// ReserveProfessional appends a readonly workers row for a booked
// professional: quantity is the inclusive day count, unit DIÁRIA.
func (s *Session) ReserveProfessional(name string, dailyRate decimal.Decimal, days int) {
	s.Labor.Workers = append(s.Labor.Workers, models.LaborLine{
		Name:         name,
		Quantity:     days,
		Unit:         models.UnitDiaria,
		UnitValue:    dailyRate,
		Total:        pricing.LineTotal(days, dailyRate),
		ReadonlyName: true,
	})
}

// SetLaborDiscount records the discount percentage, clamped to [0,100]
// at this boundary so the engine never produces negative totals.
func (s *Session) SetLaborDiscount(pct decimal.Decimal) {
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}
	s.Labor.Discount = pct
}

// LaborTotals aggregates the three sections with the discount applied.
type LaborTotals struct {
	Workers       decimal.Decimal `json:"workers"`
	Lodging       decimal.Decimal `json:"lodging"`
	Food          decimal.Decimal `json:"food"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Total         decimal.Decimal `json:"total"`
}

func sectionTotals(list []models.LaborLine) []decimal.Decimal {
	totals := make([]decimal.Decimal, len(list))
	for i, l := range list {
		totals[i] = l.LineTotal()
	}
	return totals
}

// ComputeLaborTotals computes every labor aggregate from current lines.
func (s *Session) ComputeLaborTotals() LaborTotals {
	workers := sectionTotals(s.Labor.Workers)
	lodging := sectionTotals(s.Labor.Lodging)
	food := sectionTotals(s.Labor.Food)

	sum := func(ts []decimal.Decimal) decimal.Decimal {
		total := decimal.Zero
		for _, t := range ts {
			total = total.Add(t)
		}
		return total
	}

	subtotal := pricing.LaborSubtotal(workers, lodging, food)
	discountValue, total := pricing.DiscountedTotal(subtotal, s.Labor.Discount)

	return LaborTotals{
		Workers:       sum(workers),
		Lodging:       sum(lodging),
		Food:          sum(food),
		Subtotal:      subtotal,
		DiscountValue: discountValue,
		Total:         total,
	}
}

// ---- Scenography ----

// MaterialPatch carries quantity/unit-value updates for material rows.
type MaterialPatch struct {
	Quantity  *int
	UnitValue *decimal.Decimal
}

func applyMaterialPatch(row *models.MaterialLine, patch MaterialPatch) {
	if patch.Quantity != nil {
		q := *patch.Quantity
		if q < 0 {
			q = 0
		}
		row.Quantity = q
	}
	if patch.UnitValue != nil {
		v := *patch.UnitValue
		if v.IsNegative() {
			v = decimal.Zero
		}
		row.UnitValue = v
	}
	row.Recompute()
}

// UpdateWood patches the distinguished wood line.
func (s *Session) UpdateWood(patch MaterialPatch) {
	applyMaterialPatch(&s.Scenography.Wood, patch)
}

// UpdateMaterial patches the material row at index.
func (s *Session) UpdateMaterial(index int, patch MaterialPatch) error {
	if index < 0 || index >= len(s.Scenography.Materials) {
		return apperrors.ErrLineNotFound
	}
	applyMaterialPatch(&s.Scenography.Materials[index], patch)
	return nil
}

// UpdateCleaning patches the cleaning row at index.
func (s *Session) UpdateCleaning(index int, patch MaterialPatch) error {
	if index < 0 || index >= len(s.Scenography.Cleaning) {
		return apperrors.ErrLineNotFound
	}
	applyMaterialPatch(&s.Scenography.Cleaning[index], patch)
	return nil
}

// AddSupplierMaterial appends a supplier item as a new scenography row at
// quantity zero. Madeira items go to the materials list prefixed with
// "MADEIRA - " (the wood line itself stays single); Limpeza items go to
// the cleaning list.
func (s *Session) AddSupplierMaterial(category string, item models.SupplierItem) {
	line := models.MaterialLine{
		ID:        "sup-" + category + "-" + item.ID + "-" + uuid.New(),
		Name:      item.Name,
		Unit:      item.Unit,
		UnitValue: item.Value,
	}
	switch category {
	case models.SupplierLimpeza:
		s.Scenography.Cleaning = append(s.Scenography.Cleaning, line)
	case models.SupplierMadeira:
		line.Name = "MADEIRA - " + item.Name
		s.Scenography.Materials = append(s.Scenography.Materials, line)
	default:
		s.Scenography.Materials = append(s.Scenography.Materials, line)
	}
}

// ScenographyTotals aggregates wood, materials and cleaning sections.
type ScenographyTotals struct {
	Wood      decimal.Decimal `json:"wood"`
	Materials decimal.Decimal `json:"materials"`
	Cleaning  decimal.Decimal `json:"cleaning"`
	General   decimal.Decimal `json:"general"`
}

// ComputeScenographyTotals computes every scenography aggregate from
// current lines.
func (s *Session) ComputeScenographyTotals() ScenographyTotals {
	sum := func(lines []models.MaterialLine) decimal.Decimal {
		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.LineTotal())
		}
		return total
	}

	t := ScenographyTotals{
		Wood:      s.Scenography.Wood.LineTotal(),
		Materials: sum(s.Scenography.Materials),
		Cleaning:  sum(s.Scenography.Cleaning),
	}
	t.General = t.Wood.Add(t.Materials).Add(t.Cleaning)
	return t
}
