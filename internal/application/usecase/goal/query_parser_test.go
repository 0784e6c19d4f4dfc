package goal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseGoalQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantAmount  string
		wantMonths  int
		wantPurpose string
	}{
		{
			name:        "full query with symbol, duration and purpose",
			query:       "Quiero ahorrar $5.000.000 para un viaje en 10 meses",
			wantAmount:  "5000000",
			wantMonths:  10,
			wantPurpose: "un viaje en 10 meses",
		},
		{
			name:       "years convert to months",
			query:      "ahorrar $2.000.000 en 2 años",
			wantAmount: "2000000",
			wantMonths: 24,
		},
		{
			name:       "magnitude word mil",
			query:      "necesito 500 mil en 6 meses",
			wantAmount: "500000",
			wantMonths: 6,
		},
		{
			name:       "magnitude word millones with decimal comma",
			query:      "juntar 1,5 millones",
			wantAmount: "1500000",
		},
		{
			name:       "bare integer is not an amount",
			query:      "quiero ahorrar en 10 meses",
			wantMonths: 10,
		},
		{
			name:        "purpose stops at comma",
			query:       "ahorrar $300.000 para una moto, lo antes posible",
			wantAmount:  "300000",
			wantPurpose: "una moto",
		},
		{
			name:  "empty query yields nothing",
			query: "",
		},
		{
			name:  "unrelated text yields nothing",
			query: "hola buenos dias",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseGoalQuery(tt.query)

			if tt.wantAmount == "" {
				if parsed.Amount != nil {
					t.Errorf("expected no amount, got %s", parsed.Amount)
				}
			} else {
				if parsed.Amount == nil {
					t.Fatalf("expected amount %s, got nil", tt.wantAmount)
				}
				want, _ := decimal.NewFromString(tt.wantAmount)
				if !parsed.Amount.Equal(want) {
					t.Errorf("expected amount %s, got %s", want, parsed.Amount)
				}
			}

			if tt.wantMonths == 0 {
				if parsed.Months != nil {
					t.Errorf("expected no months, got %d", *parsed.Months)
				}
			} else {
				if parsed.Months == nil {
					t.Fatalf("expected months %d, got nil", tt.wantMonths)
				}
				if *parsed.Months != tt.wantMonths {
					t.Errorf("expected months %d, got %d", tt.wantMonths, *parsed.Months)
				}
			}

			if tt.wantPurpose == "" {
				if parsed.Purpose != nil {
					t.Errorf("expected no purpose, got %q", *parsed.Purpose)
				}
			} else {
				if parsed.Purpose == nil {
					t.Fatalf("expected purpose %q, got nil", tt.wantPurpose)
				}
				if *parsed.Purpose != tt.wantPurpose {
					t.Errorf("expected purpose %q, got %q", tt.wantPurpose, *parsed.Purpose)
				}
			}

			if parsed.Raw != tt.query {
				t.Errorf("expected raw %q, got %q", tt.query, parsed.Raw)
			}
		})
	}
}

func TestParseGoalQueryNeverErrors(t *testing.T) {
	// The parser reports absence, never failure. Throw odd inputs at it.
	inputs := []string{
		"$$$",
		"123",
		"meses",
		"para ",
		"$ para , . meses años",
	}

	for _, input := range inputs {
		parsed := ParseGoalQuery(input)
		if parsed.Raw != input {
			t.Errorf("raw not preserved for %q", input)
		}
	}
}
