// Package goal contains savings-goal calculator use cases.
package goal

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// Recognized advisor reply keys. The external contract is informal; these are
// the keys that have been observed, everything else is ignored.
const (
	keyMonthlyAmount   = "Cantidad mensual de ahorro requerida"
	keyCompletionDate  = "Fecha proyectada de finalización"
	keyRecommendations = "Recomendaciones de reducción de gastos"
	keyOutput          = "output"
	keySuggestion      = "sugerencia"
	keyCategoryLabel   = "categoria"
)

// RecommendationSource identifies which branch produced the recommendation
// list, so the precedence order is auditable from the outside.
type RecommendationSource string

const (
	// SourceStructured means the recommendations object was present.
	SourceStructured RecommendationSource = "structured"
	// SourceOutputText means recommendations were mined from the free-text output.
	SourceOutputText RecommendationSource = "output_text"
	// SourceFallback means neither channel was present and the fixed list was used.
	SourceFallback RecommendationSource = "fallback"
)

// FallbackRecommendations is emitted when the advisor reply carries neither a
// recommendations object nor usable output text. The normalizer never returns
// an empty recommendation list.
var FallbackRecommendations = []string{
	"Reduce gastos en entretenimiento en un 15% para aumentar tu capacidad de ahorro.",
	"Considera usar una cuenta de ahorro con mayor rendimiento para tu meta.",
	"Establece transferencias automáticas mensuales por el monto calculado.",
	"Revisa servicios de suscripción que podrías cancelar temporalmente.",
	"Destina ingresos extras (bonos, primas) directamente a tu meta de ahorro.",
}

// AdvisorReply is the tagged reading of a raw advisor response: each
// recognized field is either present or absent, never guessed.
type AdvisorReply struct {
	MonthlyAmount      *decimal.Decimal
	CompletionDate     string
	HasCompletion      bool
	Recommendations    map[string]any
	HasRecommendations bool
	Output             string
	HasOutput          bool
}

// ReadAdvisorReply extracts the recognized keys from a loose JSON object.
func ReadAdvisorReply(raw map[string]any) AdvisorReply {
	var reply AdvisorReply

	if v, ok := raw[keyMonthlyAmount]; ok {
		if amount, ok := toDecimal(v); ok {
			reply.MonthlyAmount = &amount
		}
	}

	if v, ok := raw[keyCompletionDate].(string); ok && v != "" {
		reply.CompletionDate = v
		reply.HasCompletion = true
	}

	if v, ok := raw[keyRecommendations].(map[string]any); ok {
		reply.Recommendations = v
		reply.HasRecommendations = true
	}

	if v, ok := raw[keyOutput].(string); ok && strings.TrimSpace(v) != "" {
		reply.Output = v
		reply.HasOutput = true
	}

	return reply
}

// NormalizeGoalResponse turns a raw advisor reply into a SavingsGoal. The
// target amount always comes from the parsed query; the reply only supplies
// the monthly amount, the projected completion date and the recommendations.
// A reply missing every recognized key is not an error — each field falls
// back independently.
func NormalizeGoalResponse(raw map[string]any, name string, targetAmount decimal.Decimal) (*entity.SavingsGoal, RecommendationSource) {
	reply := ReadAdvisorReply(raw)

	result := entity.NewSavingsGoal(name, targetAmount)

	if reply.MonthlyAmount != nil {
		// The external numeric value is trusted as-is, no bounds validation.
		result.MonthlySavingAmount = *reply.MonthlyAmount
	}

	if reply.HasCompletion {
		result.Deadline = parseCompletionDate(reply.CompletionDate)
	}

	var source RecommendationSource
	result.Recommendations, source = extractRecommendations(reply)

	return result, source
}

// extractRecommendations applies the precedence order: structured object
// first, then free-text output lines, then the fixed fallback. The first
// matching branch wins for the whole reply — branches are never mixed.
func extractRecommendations(reply AdvisorReply) ([]string, RecommendationSource) {
	if reply.HasRecommendations {
		if lines := structuredRecommendations(reply.Recommendations); len(lines) > 0 {
			return lines, SourceStructured
		}
	}

	if reply.HasOutput {
		if lines := outputRecommendations(reply.Output); len(lines) > 0 {
			return lines, SourceOutputText
		}
	}

	recommendations := make([]string, len(FallbackRecommendations))
	copy(recommendations, FallbackRecommendations)
	return recommendations, SourceFallback
}

// structuredRecommendations renders each entry of the recommendations object
// as "<key>: <text>". Keys are sorted so the output is deterministic. An
// entry of unexpected shape is flattened rather than silently dropped.
func structuredRecommendations(entries map[string]any) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	recommendations := make([]string, 0, len(keys))
	for _, key := range keys {
		switch value := entries[key].(type) {
		case string:
			recommendations = append(recommendations, key+": "+value)
		case map[string]any:
			if suggestion, ok := value[keySuggestion].(string); ok {
				label := key
				if category, ok := value[keyCategoryLabel].(string); ok && category != "" {
					label = category
				}
				recommendations = append(recommendations, label+": "+suggestion)
			} else {
				recommendations = append(recommendations, key+": "+flattenValue(value))
			}
		default:
			recommendations = append(recommendations, key+": "+flattenValue(value))
		}
	}

	return recommendations
}

// outputRecommendations keeps the lines of the free-text output that look
// like recommendations: bulleted lines and lines mentioning spending or
// saving.
func outputRecommendations(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		if strings.Contains(trimmed, "-") || strings.Contains(trimmed, "•") ||
			strings.Contains(lower, "gasto") || strings.Contains(lower, "ahorro") {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// parseCompletionDate reads the projected completion date. A string with
// slashes is day/month/year (regional convention — never month first); all
// three parts must be integers or the value is ignored. Anything else gets a
// generic parse attempt; on failure the deadline stays unset.
func parseCompletionDate(value string) *time.Time {
	value = strings.TrimSpace(value)

	if strings.Contains(value, "/") {
		parts := strings.Split(value, "/")
		if len(parts) == 3 {
			day, errDay := strconv.Atoi(strings.TrimSpace(parts[0]))
			month, errMonth := strconv.Atoi(strings.TrimSpace(parts[1]))
			year, errYear := strconv.Atoi(strings.TrimSpace(parts[2]))
			if errDay == nil && errMonth == nil && errYear == nil {
				date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				return &date
			}
		}
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(layout, value); err == nil {
			return &date
		}
	}

	return nil
}

// flattenValue renders an arbitrary JSON value as plain text, stripping
// braces, brackets and quotes.
func flattenValue(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	flat := strings.NewReplacer("{", "", "}", "", "[", "", "]", "", `"`, "").Replace(string(encoded))
	return strings.TrimSpace(flat)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case float64:
		return decimal.NewFromFloat(value), true
	case json.Number:
		if d, err := decimal.NewFromString(value.String()); err == nil {
			return d, true
		}
	case string:
		if d, err := decimal.NewFromString(value); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}
