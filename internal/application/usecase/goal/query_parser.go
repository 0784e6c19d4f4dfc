// Package goal contains savings-goal calculator use cases.
package goal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedGoalQuery is the structured reading of a free-text goal description.
// Nil fields mean "not found" — the parser never substitutes defaults and
// never fails; fallback policy belongs to the caller.
type ParsedGoalQuery struct {
	Amount  *decimal.Decimal
	Months  *int
	Purpose *string
	Raw     string
}

var (
	// Optional currency symbol, digit groups with optional thousands
	// separators, optional magnitude word.
	amountRegex = regexp.MustCompile(`(?i)(\$)?\s*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?|\d+(?:[.,]\d+)?)\s*(mil(?:l[oó]n(?:es)?)?)?`)

	durationRegex = regexp.MustCompile(`(?i)(\d+)\s*(mes(?:es)?|año(?:s)?)`)

	purposeRegex = regexp.MustCompile(`(?i)para\s+([^,.]+)`)
)

// ParseGoalQuery extracts an amount, a duration in months, and a purpose
// phrase from a free-text savings goal. It performs no I/O and reports
// absence through nil fields instead of errors, so callers can apply their
// own fallback policy per field.
func ParseGoalQuery(text string) ParsedGoalQuery {
	result := ParsedGoalQuery{Raw: text}

	result.Amount = parseAmount(text)
	result.Months = parseDuration(text)
	result.Purpose = parsePurpose(text)

	return result
}

// parseAmount finds the first currency-like token. A bare integer with no
// currency symbol, no thousands separator and no magnitude word is not an
// amount — it is almost always the duration ("10 meses").
func parseAmount(text string) *decimal.Decimal {
	for _, m := range amountRegex.FindAllStringSubmatch(text, -1) {
		symbol, digits, magnitude := m[1], m[2], strings.ToLower(m[3])

		if symbol == "" && magnitude == "" && !strings.ContainsAny(digits, ".,") {
			continue
		}

		multiplier := int64(1)
		switch {
		case magnitude == "mil":
			multiplier = 1_000
		case strings.HasPrefix(magnitude, "mill"):
			multiplier = 1_000_000
		}

		var amount decimal.Decimal
		if multiplier > 1 {
			// With a magnitude word the separator is a decimal mark
			// ("1,5 millones"), so parse as a float before multiplying.
			value, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", "."), 64)
			if err != nil {
				continue
			}
			amount = decimal.NewFromFloat(value).Mul(decimal.NewFromInt(multiplier))
		} else {
			stripped := strings.NewReplacer(".", "", ",", "").Replace(digits)
			value, err := strconv.ParseInt(stripped, 10, 64)
			if err != nil {
				continue
			}
			amount = decimal.NewFromInt(value)
		}

		amount = amount.Round(0)
		return &amount
	}

	return nil
}

// parseDuration finds a "<n> mes(es)" or "<n> año(s)" token; years are
// converted to months.
func parseDuration(text string) *int {
	m := durationRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	if strings.HasPrefix(strings.ToLower(m[2]), "año") {
		value *= 12
	}

	return &value
}

// parsePurpose finds a "para <phrase>" pattern, phrase running to the next
// comma or period.
func parsePurpose(text string) *string {
	m := purposeRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	purpose := strings.TrimSpace(m[1])
	if purpose == "" {
		return nil
	}

	return &purpose
}
