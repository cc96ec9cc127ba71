package quote

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"florada/internal/models"
	"florada/internal/session"
	"florada/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer("Mais Flores")
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return r
}

func quoteSession() *session.Session {
	s := session.New(models.UserInfo{
		Name:      "Maria Silva",
		Phone:     "5531999887766",
		EventName: "Casamento Ana e Pedro",
		EventDate: "2025-12-20",
	})

	s.Arrangements = append(s.Arrangements, models.Arrangement{
		Type:     models.ArrangementMesa,
		Quantity: 2,
		Flowers: []models.FlowerLine{
			{Name: "Rosa", Quantity: 10, UnitPrice: dec("4.50")},
			{Name: "Eucalipto", Quantity: 3, UnitPrice: dec("12.00")},
		},
	})
	return s
}

func TestRenderFull(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("with_prices", func(t *testing.T) {
		s := quoteSession()
		s.Rental = append(s.Rental, models.RentalLine{
			Name: "Mesa Rústica 2m", DailyRate: dec("180.00"), Quantity: 2,
			StartDate: "2025-12-19", EndDate: "2025-12-21", Days: 3, Freight: dec("150.00"),
		})

		doc, err := r.RenderFull(s, true)
		testutil.AssertNoError(t, err)

		html := string(doc)
		for _, want := range []string{
			"Maria Silva",
			"Casamento Ana e Pedro",
			"Arranjos",
			"Acervo",
			"Mesa Rústica 2m",
			"R$ 4,50",
			"R$ 45,00",
			"Total Geral: R$ 162,00",
			"R$ 1.230,00",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("recipe_mode_hides_prices", func(t *testing.T) {
		s := quoteSession()

		doc, err := r.RenderFull(s, false)
		testutil.AssertNoError(t, err)

		html := string(doc)
		if !strings.Contains(html, "Rosa") || !strings.Contains(html, "Eucalipto") {
			t.Error("recipe must still list the flowers")
		}
		if strings.Contains(html, "R$ 4,50") || strings.Contains(html, "R$ 162,00") {
			t.Error("recipe must not show prices")
		}
	})

	t.Run("labor_section_appears_when_filled", func(t *testing.T) {
		s := quoteSession()
		s.Labor.Workers[0] = models.LaborLine{Name: "Montador", Quantity: 2, Unit: models.UnitDiaria, UnitValue: dec("250.00")}

		doc, err := r.RenderFull(s, true)
		testutil.AssertNoError(t, err)

		html := string(doc)
		if !strings.Contains(html, "Montador") || !strings.Contains(html, "R$ 500,00") {
			t.Error("expected the labor rows in the document")
		}
	})

	t.Run("blank_labor_rows_do_not_trigger_the_section", func(t *testing.T) {
		s := quoteSession()

		doc, err := r.RenderFull(s, true)
		testutil.AssertNoError(t, err)

		if strings.Contains(string(doc), "Mão de Obra") {
			t.Error("empty labor must not render a section")
		}
	})

	t.Run("empty_session", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva"})
		_, err := r.RenderFull(s, true)
		testutil.AssertAppError(t, err, "EMPTY_QUOTE")
	})
}

func TestRenderRental(t *testing.T) {
	r := newTestRenderer(t)
	r.budgetNumber = func() int { return 123456 }

	t.Run("document", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva", Phone: "5531999887766"})
		s.Rental = append(s.Rental, models.RentalLine{
			Name: "Mesa Rústica 2m", DailyRate: dec("180.00"), Quantity: 2,
			StartDate: "2025-12-19", EndDate: "2025-12-21", Days: 3,
			Freight: dec("150.00"), Location: "Sítio Recanto Verde",
		})

		doc, err := r.RenderRental(s)
		testutil.AssertNoError(t, err)

		html := string(doc)
		for _, want := range []string{
			"123456",
			"2025-12-19 - 2025-12-21 • Sítio Recanto Verde",
			"R$ 180.00",
			"R$ 1230.00",
			"Pagamento: 50% no fechamento e 50% na entrega",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("generated_number_range", func(t *testing.T) {
		fresh := newTestRenderer(t)
		for i := 0; i < 50; i++ {
			n := fresh.budgetNumber()
			if n < 100000 || n > 999999 {
				t.Fatalf("budget number %d outside six-digit range", n)
			}
		}
	})

	t.Run("empty_cart", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva"})
		_, err := r.RenderRental(s)
		testutil.AssertAppError(t, err, "EMPTY_QUOTE")
	})
}

func TestRenderScenography(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("filters_zero_quantity_rows", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva"})
		s.Scenography.Materials[0].Quantity = 4
		s.Scenography.Materials[0].UnitValue = dec("25.00")
		s.Scenography.Materials[0].Recompute()
		filtered := s.Scenography.Materials[1].Name

		doc, err := r.RenderScenography(s)
		testutil.AssertNoError(t, err)

		html := string(doc)
		if !strings.Contains(html, s.Scenography.Materials[0].Name) {
			t.Error("expected the quoted material in the document")
		}
		if strings.Contains(html, filtered) {
			t.Errorf("zero-quantity row %q must be filtered out", filtered)
		}
	})

	t.Run("wood_section_only_when_quoted", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva"})
		s.Scenography.Materials[0].Quantity = 1
		s.Scenography.Materials[0].UnitValue = dec("10.00")

		doc, err := r.RenderScenography(s)
		testutil.AssertNoError(t, err)
		if strings.Contains(string(doc), "MADEIRA") {
			t.Error("wood section must not appear at quantity zero")
		}

		s.Scenography.Wood.Quantity = 10
		s.Scenography.Wood.UnitValue = dec("30.00")

		doc, err = r.RenderScenography(s)
		testutil.AssertNoError(t, err)

		html := string(doc)
		if !strings.Contains(html, "MADEIRA") || !strings.Contains(html, "R$ 300.00") {
			t.Error("expected the wood section with its total")
		}
	})

	t.Run("empty_session", func(t *testing.T) {
		s := session.New(models.UserInfo{Name: "Maria Silva"})
		_, err := r.RenderScenography(s)
		testutil.AssertAppError(t, err, "EMPTY_QUOTE")
	})
}
