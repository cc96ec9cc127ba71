// Package quote turns a budget session into the printable HTML documents
// handed to the customer.
package quote

import (
	"bytes"
	"embed"
	"html/template"
	"math/rand"
	"time"

	apperrors "florada/internal/errors"
	"florada/internal/models"
	"florada/internal/session"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the embedded quote templates.
type Renderer struct {
	tpl          *template.Template
	companyName  string
	budgetNumber func() int // overridable for tests
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer(companyName string) (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		tpl:         tpl,
		companyName: companyName,
		budgetNumber: func() int {
			return rand.Intn(900000) + 100000
		},
	}, nil
}

type flowerRow struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

type arrangementView struct {
	Type     string
	Quantity int
	Flowers  []flowerRow
	Total    string
}

type laborRow struct {
	Name      string
	Quantity  int
	Unit      string
	UnitValue string
	Total     string
}

type laborView struct {
	Workers       []laborRow
	Lodging       []laborRow
	Food          []laborRow
	WorkersTotal  string
	LodgingTotal  string
	FoodTotal     string
	Subtotal      string
	DiscountPct   string
	DiscountValue string
	Total         string
}

type rentalSummaryRow struct {
	Name      string
	Quantity  int
	UnitValue string
	Total     string
}

type fullView struct {
	CompanyName  string
	CustomerName string
	EventName    string
	Phone        string
	Date         string
	ShowPrices   bool

	Arrangements      []arrangementView
	ArrangementsTotal string

	Rental      []rentalSummaryRow
	RentalTotal string

	Labor *laborView
}

func laborRows(lines []models.LaborLine) []laborRow {
	rows := make([]laborRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, laborRow{
			Name:      l.Name,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitValue: FormatBRL(l.UnitValue),
			Total:     FormatBRL(l.LineTotal()),
		})
	}
	return rows
}

func laborHasContent(labor session.Labor) bool {
	for _, list := range [][]models.LaborLine{labor.Workers, labor.Lodging, labor.Food} {
		for _, l := range list {
			if l.Name != "" || !l.LineTotal().IsZero() {
				return true
			}
		}
	}
	return false
}

// RenderFull produces the combined quote: arrangements, rental summary
// and labor, in that order. When showPrices is false the arrangement
// tables list only flowers and quantities (the recipe handed to the
// production team). Rendering an entirely empty session is an error.
func (r *Renderer) RenderFull(s *session.Session, showPrices bool) ([]byte, error) {
	view := fullView{
		CompanyName:  r.companyName,
		CustomerName: s.User.Name,
		EventName:    s.User.EventName,
		Phone:        s.User.Phone,
		Date:         FormatDate(time.Now()),
		ShowPrices:   showPrices,
	}

	for _, a := range s.Arrangements {
		av := arrangementView{
			Type:     string(a.Type),
			Quantity: a.Quantity,
			Total:    FormatBRL(a.LineTotal()),
		}
		for _, f := range a.Flowers {
			av.Flowers = append(av.Flowers, flowerRow{
				Name:      f.Name,
				Quantity:  f.Quantity,
				UnitPrice: FormatBRL(f.UnitPrice),
				Total:     FormatBRL(f.LineTotal()),
			})
		}
		view.Arrangements = append(view.Arrangements, av)
	}
	view.ArrangementsTotal = FormatBRL(s.ArrangementsTotal())

	for _, l := range s.Rental {
		view.Rental = append(view.Rental, rentalSummaryRow{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitValue: FormatBRL(l.DailyRate),
			Total:     FormatBRL(l.LineTotal()),
		})
	}
	view.RentalTotal = FormatBRL(s.RentalTotal())

	if laborHasContent(s.Labor) {
		totals := s.ComputeLaborTotals()
		view.Labor = &laborView{
			Workers:       laborRows(s.Labor.Workers),
			Lodging:       laborRows(s.Labor.Lodging),
			Food:          laborRows(s.Labor.Food),
			WorkersTotal:  FormatBRL(totals.Workers),
			LodgingTotal:  FormatBRL(totals.Lodging),
			FoodTotal:     FormatBRL(totals.Food),
			Subtotal:      FormatBRL(totals.Subtotal),
			DiscountPct:   s.Labor.Discount.String(),
			DiscountValue: FormatBRL(totals.DiscountValue),
			Total:         FormatBRL(totals.Total),
		}
	}

	if len(view.Arrangements) == 0 && len(view.Rental) == 0 && view.Labor == nil {
		return nil, apperrors.ErrEmptyQuote
	}

	return r.execute("quote.html.tmpl", view)
}

type rentalRow struct {
	Name      string
	Period    string
	Days      int
	DailyRate string
	Quantity  int
	Freight   string
	Total     string
}

type rentalView struct {
	CompanyName  string
	BudgetNumber int
	CustomerName string
	EventName    string
	Phone        string
	Date         string
	Items        []rentalRow
	Total        string
}

// RenderRental produces the furniture rental document with its random
// six-digit budget number and payment terms.
func (r *Renderer) RenderRental(s *session.Session) ([]byte, error) {
	if len(s.Rental) == 0 {
		return nil, apperrors.ErrEmptyQuote
	}

	view := rentalView{
		CompanyName:  r.companyName,
		BudgetNumber: r.budgetNumber(),
		CustomerName: s.User.Name,
		EventName:    s.User.EventName,
		Phone:        s.User.Phone,
		Date:         FormatDate(time.Now()),
		Total:        FormatAmount(s.RentalTotal()),
	}

	for _, l := range s.Rental {
		period := l.StartDate + " - " + l.EndDate
		if l.Location != "" {
			period += " • " + l.Location
		}
		view.Items = append(view.Items, rentalRow{
			Name:      l.Name,
			Period:    period,
			Days:      l.Days,
			DailyRate: FormatAmount(l.DailyRate),
			Quantity:  l.Quantity,
			Freight:   FormatAmount(l.Freight),
			Total:     FormatAmount(l.LineTotal()),
		})
	}

	return r.execute("rental.html.tmpl", view)
}

type materialRow struct {
	Name      string
	Quantity  int
	Unit      string
	UnitValue string
	Total     string
}

type scenographyView struct {
	CompanyName  string
	CustomerName string
	EventName    string
	Phone        string
	Date         string
	Wood         *materialRow
	Materials    []materialRow
	Cleaning     []materialRow
	Total        string
}

func materialRows(lines []models.MaterialLine) []materialRow {
	var rows []materialRow
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		rows = append(rows, materialRow{
			Name:      l.Name,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitValue: FormatAmount(l.UnitValue),
			Total:     FormatAmount(l.LineTotal()),
		})
	}
	return rows
}

// RenderScenography produces the scenography materials document. Rows
// still at quantity zero are left out; the wood section appears only
// when wood was actually quoted.
func (r *Renderer) RenderScenography(s *session.Session) ([]byte, error) {
	view := scenographyView{
		CompanyName:  r.companyName,
		CustomerName: s.User.Name,
		EventName:    s.User.EventName,
		Phone:        s.User.Phone,
		Date:         FormatDate(time.Now()),
		Materials:    materialRows(s.Scenography.Materials),
		Cleaning:     materialRows(s.Scenography.Cleaning),
		Total:        FormatAmount(s.ComputeScenographyTotals().General),
	}

	if s.Scenography.Wood.Quantity > 0 {
		w := s.Scenography.Wood
		view.Wood = &materialRow{
			Name:      w.Name,
			Quantity:  w.Quantity,
			Unit:      w.Unit,
			UnitValue: FormatAmount(w.UnitValue),
			Total:     FormatAmount(w.LineTotal()),
		}
	}

	if view.Wood == nil && len(view.Materials) == 0 && len(view.Cleaning) == 0 {
		return nil, apperrors.ErrEmptyQuote
	}

	return r.execute("scenography.html.tmpl", view)
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}
