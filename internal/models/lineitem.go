package models

import (
	"github.com/shopspring/decimal"

	"florada/internal/pricing"
)

// Line is the computed-total contract shared by every budget line variant.
// Implementations derive the total from their own fields; a stored Total
// column is a display convenience, never the source of truth.
type Line interface {
	LineTotal() decimal.Decimal
}

// FlowerLine is one flower row inside an arrangement being assembled.
type FlowerLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	ImageURL  *string         `json:"image_url"`
}

// LineTotal computes quantity × unit price.
func (l FlowerLine) LineTotal() decimal.Decimal {
	return pricing.LineTotal(l.Quantity, l.UnitPrice)
}

// Recompute refreshes the stored Total after a mutation.
func (l *FlowerLine) Recompute() {
	l.Total = l.LineTotal()
}

// ArrangementType tags an arrangement with its category.
type ArrangementType string

// The fixed set of arrangement categories offered by the business.
const (
	ArrangementMesa      ArrangementType = "Mesa"
	ArrangementRecepcao  ArrangementType = "Recepção"
	ArrangementMesaBolo  ArrangementType = "Mesa de Bolo"
	ArrangementBuffet    ArrangementType = "Mesa de Buffet"
	ArrangementEstantes  ArrangementType = "Estantes/Cantos/Lounges"
	ArrangementPendentes ArrangementType = "Pendentes/Aéreos"
	ArrangementSobMedida ArrangementType = "Arranjos sob Medida"
)

// ArrangementTypes lists every valid arrangement category, in menu order.
var ArrangementTypes = []ArrangementType{
	ArrangementMesa,
	ArrangementRecepcao,
	ArrangementMesaBolo,
	ArrangementBuffet,
	ArrangementEstantes,
	ArrangementPendentes,
	ArrangementSobMedida,
}

// ValidArrangementType reports whether s names a known category.
func ValidArrangementType(s string) bool {
	for _, t := range ArrangementTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Arrangement is a finalized bundle of flower lines sold as one
// configurable unit, purchased in integer multiples.
type Arrangement struct {
	Type      ArrangementType `json:"type"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Flowers   []FlowerLine    `json:"flowers"`
}

// FlowerSubtotal sums the flower line totals for one copy of the arrangement.
func (a Arrangement) FlowerSubtotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(a.Flowers))
	for i, f := range a.Flowers {
		totals[i] = f.LineTotal()
	}
	return pricing.ArrangementTotal(totals, 1)
}

// LineTotal is the flower subtotal multiplied by the arrangement quantity.
func (a Arrangement) LineTotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(a.Flowers))
	for i, f := range a.Flowers {
		totals[i] = f.LineTotal()
	}
	return pricing.ArrangementTotal(totals, a.Quantity)
}

// RentalLine is one furniture rental row in the inventory cart.
type RentalLine struct {
	Name      string          `json:"name"`
	ImageURL  *string         `json:"image_url"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Quantity  int             `json:"quantity"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Days      int             `json:"days"`
	Freight   decimal.Decimal `json:"freight"`
	Location  string          `json:"location"`
	Total     decimal.Decimal `json:"total"`
	Owned     bool            `json:"owned"`
}

// LineTotal computes dailyRate × days × quantity + freight.
func (l RentalLine) LineTotal() decimal.Decimal {
	return pricing.RentalTotal(l.DailyRate, l.Days, l.Quantity, l.Freight)
}

// Recompute refreshes the stored Total after a mutation.
func (l *RentalLine) Recompute() {
	l.Total = l.LineTotal()
}

// LaborLine is one row in any of the three labor sub-sections (daily-rate
// workers, lodging, food). ReadonlyName marks rows populated by reserving
// a catalog professional.
type LaborLine struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	Total        decimal.Decimal `json:"total"`
	ReadonlyName bool            `json:"readonly_name,omitempty"`
}

// LineTotal computes quantity × unit value.
func (l LaborLine) LineTotal() decimal.Decimal {
	return pricing.LineTotal(l.Quantity, l.UnitValue)
}

// Recompute refreshes the stored Total after a mutation.
func (l *LaborLine) Recompute() {
	l.Total = l.LineTotal()
}

// MaterialLine is one scenography row. The same shape serves the
// distinguished wood line, general materials, and cleaning materials.
type MaterialLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Total     decimal.Decimal `json:"total"`
}

// LineTotal computes quantity × unit value.
func (l MaterialLine) LineTotal() decimal.Decimal {
	return pricing.LineTotal(l.Quantity, l.UnitValue)
}

// Recompute refreshes the stored Total after a mutation.
func (l *MaterialLine) Recompute() {
	l.Total = l.LineTotal()
}
