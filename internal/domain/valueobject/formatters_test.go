package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"millions get dot grouping", "5000000", "$ 5.000.000"},
		{"thousands", "50000", "$ 50.000"},
		{"small amount", "900", "$ 900"},
		{"zero", "0", "$ 0"},
		{"decimals are dropped", "1500.75", "$ 1.501"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _ := decimal.NewFromString(tt.amount)
			if got := FormatCurrency(amount); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "15/06/2025" {
		t.Errorf("expected 15/06/2025, got %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{50, "50.0%"},
		{33.333, "33.3%"},
		{0, "0.0%"},
	}

	for _, tt := range tests {
		if got := FormatPercentage(tt.value); got != tt.want {
			t.Errorf("FormatPercentage(%f): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormatMonthYear(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatMonthYear(date); got != "junio de 2025" {
		t.Errorf("expected junio de 2025, got %q", got)
	}
	if got := FormatMonth(date); got != "junio" {
		t.Errorf("expected junio, got %q", got)
	}
}
