package goal

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// decode builds a raw reply the way the webhook adapter does, with
// json.Number for numerics.
func decode(t *testing.T, payload string) map[string]any {
	t.Helper()

	decoder := json.NewDecoder(strings.NewReader(payload))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return raw
}

func TestNormalizeGoalResponseStructured(t *testing.T) {
	raw := decode(t, `{
		"Cantidad mensual de ahorro requerida": 500000,
		"Fecha proyectada de finalización": "15/06/2025",
		"Recomendaciones de reducción de gastos": {
			"ocio": {"sugerencia": "Reducir salidas", "categoria": "ocio"}
		}
	}`)

	target := decimal.NewFromInt(5_000_000)
	result, source := NormalizeGoalResponse(raw, "un viaje", target)

	if source != SourceStructured {
		t.Errorf("expected source %s, got %s", SourceStructured, source)
	}
	if !result.MonthlySavingAmount.Equal(decimal.NewFromInt(500_000)) {
		t.Errorf("expected monthly 500000, got %s", result.MonthlySavingAmount)
	}
	if !result.TargetAmount.Equal(target) {
		t.Errorf("expected target %s, got %s", target, result.TargetAmount)
	}
	if result.Deadline == nil {
		t.Fatal("expected deadline, got nil")
	}
	want := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !result.Deadline.Equal(want) {
		t.Errorf("expected deadline %s, got %s", want, result.Deadline)
	}
	if !reflect.DeepEqual(result.Recommendations, []string{"ocio: Reducir salidas"}) {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestNormalizeGoalResponseEmptyReply(t *testing.T) {
	result, source := NormalizeGoalResponse(map[string]any{}, "tu meta financiera", DefaultTargetAmount)

	if source != SourceFallback {
		t.Errorf("expected source %s, got %s", SourceFallback, source)
	}
	if !result.MonthlySavingAmount.IsZero() {
		t.Errorf("expected monthly zero, got %s", result.MonthlySavingAmount)
	}
	if result.Deadline != nil {
		t.Errorf("expected no deadline, got %s", result.Deadline)
	}
	if !reflect.DeepEqual(result.Recommendations, FallbackRecommendations) {
		t.Errorf("expected fallback recommendations, got %v", result.Recommendations)
	}
	if len(result.Recommendations) == 0 {
		t.Error("recommendation list must never be empty")
	}
}

func TestNormalizeGoalResponseEmptyRecommendationsObject(t *testing.T) {
	raw := decode(t, `{"Recomendaciones de reducción de gastos": {}}`)

	result, source := NormalizeGoalResponse(raw, "meta", DefaultTargetAmount)

	if source != SourceFallback {
		t.Errorf("expected source %s, got %s", SourceFallback, source)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("recommendation list must never be empty")
	}
	if !reflect.DeepEqual(result.Recommendations, FallbackRecommendations) {
		t.Errorf("expected fallback recommendations, got %v", result.Recommendations)
	}
}

func TestNormalizeGoalResponseEmptyRecommendationsFallsThroughToOutput(t *testing.T) {
	raw := decode(t, `{
		"Recomendaciones de reducción de gastos": {},
		"output": "- Reduce gastos de restaurantes"
	}`)

	result, source := NormalizeGoalResponse(raw, "meta", DefaultTargetAmount)

	if source != SourceOutputText {
		t.Errorf("expected source %s, got %s", SourceOutputText, source)
	}
	if !reflect.DeepEqual(result.Recommendations, []string{"- Reduce gastos de restaurantes"}) {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestNormalizeGoalResponseOutputText(t *testing.T) {
	raw := decode(t, `{
		"output": "Hola te cuento el plan:\n- Reduce gastos de restaurantes\n- Automatiza tu ahorro mensual\ngracias"
	}`)

	result, source := NormalizeGoalResponse(raw, "una moto", DefaultTargetAmount)

	if source != SourceOutputText {
		t.Errorf("expected source %s, got %s", SourceOutputText, source)
	}
	want := []string{"- Reduce gastos de restaurantes", "- Automatiza tu ahorro mensual"}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("expected %v, got %v", want, result.Recommendations)
	}
}

func TestNormalizeGoalResponseStructuredWinsOverOutput(t *testing.T) {
	raw := decode(t, `{
		"Recomendaciones de reducción de gastos": {"transporte": "Usa bicicleta"},
		"output": "- algo distinto"
	}`)

	result, source := NormalizeGoalResponse(raw, "meta", DefaultTargetAmount)

	if source != SourceStructured {
		t.Errorf("expected source %s, got %s", SourceStructured, source)
	}
	if !reflect.DeepEqual(result.Recommendations, []string{"transporte: Usa bicicleta"}) {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestNormalizeGoalResponseMonthlyAmountShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"number", `{"Cantidad mensual de ahorro requerida": 250000}`, "250000"},
		{"decimal number", `{"Cantidad mensual de ahorro requerida": 250000.75}`, "250000.75"},
		{"string", `{"Cantidad mensual de ahorro requerida": "180000"}`, "180000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := NormalizeGoalResponse(decode(t, tt.payload), "meta", DefaultTargetAmount)
			want, _ := decimal.NewFromString(tt.want)
			if !result.MonthlySavingAmount.Equal(want) {
				t.Errorf("expected %s, got %s", want, result.MonthlySavingAmount)
			}
		})
	}
}

func TestParseCompletionDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{
			name:  "slash date is day first",
			value: "01/02/2026",
			want:  timePtr(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "iso date",
			value: "2025-12-31",
			want:  timePtr(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "garbage slash date is ignored",
			value: "junio/15/2025x",
			want:  nil,
		},
		{
			name:  "free text is ignored",
			value: "mediados de 2025",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCompletionDate(tt.value)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %s", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
