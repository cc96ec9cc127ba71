package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"zero", "0", "R$ 0,00"},
		{"cents", "0.5", "R$ 0,50"},
		{"plain", "138", "R$ 138,00"},
		{"thousands", "1234.56", "R$ 1.234,56"},
		{"millions", "1234567.89", "R$ 1.234.567,89"},
		{"rounds_half_up", "10.005", "R$ 10,01"},
		{"negative", "-1234.5", "-R$ 1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.value))
			if got != tt.want {
				t.Errorf("FormatBRL(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.RequireFromString("180")); got != "R$ 180.00" {
		t.Errorf("FormatAmount = %q", got)
	}
	if got := FormatAmount(decimal.RequireFromString("1234.5")); got != "R$ 1234.50" {
		t.Errorf("FormatAmount = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "20/12/2025" {
		t.Errorf("FormatDate = %q", got)
	}
}
