package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
	}{
		{"simple", 10, "8.50", "85"},
		{"zero_quantity", 0, "8.50", "0"},
		{"fractional_price", 3, "0.10", "0.3"},
		{"large_quantity", 500, "12.75", "6375"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.quantity, dec(tt.unitPrice))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("LineTotal(%d, %s) = %s, want %s", tt.quantity, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestArrangementTotal(t *testing.T) {
	lines := []decimal.Decimal{dec("85"), dec("36"), dec("24.50")}

	t.Run("single_copy", func(t *testing.T) {
		got := ArrangementTotal(lines, 1)
		if !got.Equal(dec("145.50")) {
			t.Errorf("total = %s, want 145.50", got)
		}
	})

	t.Run("multiple_copies", func(t *testing.T) {
		got := ArrangementTotal(lines, 4)
		if !got.Equal(dec("582")) {
			t.Errorf("total = %s, want 582", got)
		}
	})

	t.Run("no_lines", func(t *testing.T) {
		got := ArrangementTotal(nil, 3)
		if !got.IsZero() {
			t.Errorf("total = %s, want 0", got)
		}
	})
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same_day", "2025-11-10", "2025-11-10", 1},
		{"two_day_span", "2025-11-10", "2025-11-12", 3},
		{"single_night", "2025-11-10", "2025-11-11", 2},
		{"inverted", "2025-11-12", "2025-11-10", 0},
		{"week", "2025-11-01", "2025-11-07", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InclusiveDays(date(tt.start), date(tt.end))
			if got != tt.want {
				t.Errorf("InclusiveDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestRentalTotal(t *testing.T) {
	t.Run("with_freight", func(t *testing.T) {
		// 180/day for 3 days, 2 units, 150 freight
		got := RentalTotal(dec("180"), 3, 2, dec("150"))
		if !got.Equal(dec("1230")) {
			t.Errorf("total = %s, want 1230", got)
		}
	})

	t.Run("without_freight", func(t *testing.T) {
		got := RentalTotal(dec("180"), 3, 2, decimal.Zero)
		if !got.Equal(dec("1080")) {
			t.Errorf("total = %s, want 1080", got)
		}
	})

	t.Run("freight_applied_once_per_line", func(t *testing.T) {
		got := RentalTotal(dec("90"), 1, 5, dec("150"))
		if !got.Equal(dec("600")) {
			t.Errorf("total = %s, want 600", got)
		}
	})
}

func TestLaborSubtotal(t *testing.T) {
	workers := []decimal.Decimal{dec("350"), dec("280")}
	lodging := []decimal.Decimal{dec("200")}
	food := []decimal.Decimal{dec("45"), dec("45")}

	got := LaborSubtotal(workers, lodging, food)
	if !got.Equal(dec("920")) {
		t.Errorf("subtotal = %s, want 920", got)
	}

	if !LaborSubtotal(nil, nil, nil).IsZero() {
		t.Error("expected zero subtotal for empty sections")
	}
}

func TestDiscountedTotal(t *testing.T) {
	t.Run("ten_percent", func(t *testing.T) {
		discountValue, finalTotal := DiscountedTotal(dec("1000"), dec("10"))
		if !discountValue.Equal(dec("100")) {
			t.Errorf("discount = %s, want 100", discountValue)
		}
		if !finalTotal.Equal(dec("900")) {
			t.Errorf("total = %s, want 900", finalTotal)
		}
	})

	t.Run("zero_discount", func(t *testing.T) {
		discountValue, finalTotal := DiscountedTotal(dec("1000"), decimal.Zero)
		if !discountValue.IsZero() {
			t.Errorf("discount = %s, want 0", discountValue)
		}
		if !finalTotal.Equal(dec("1000")) {
			t.Errorf("total = %s, want 1000", finalTotal)
		}
	})

	t.Run("fractional_percent", func(t *testing.T) {
		discountValue, finalTotal := DiscountedTotal(dec("200"), dec("12.5"))
		if !discountValue.Equal(dec("25")) {
			t.Errorf("discount = %s, want 25", discountValue)
		}
		if !finalTotal.Equal(dec("175")) {
			t.Errorf("total = %s, want 175", finalTotal)
		}
	})
}
