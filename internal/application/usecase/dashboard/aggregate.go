// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// monthAbbreviations maps months to Spanish abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Ene",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dic",
}

// CategoryAggregate represents total expenses for one category together with
// its share of all expenses.
type CategoryAggregate struct {
	Category   *entity.Category
	Amount     decimal.Decimal
	Percentage float64
}

// MonthlyAggregate represents income, expense and per-month balance for one
// calendar month. Balance is income minus expense for that month only, not a
// running total.
type MonthlyAggregate struct {
	Month   time.Time
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ComputeCategoryTotals sums expense transactions per category and computes
// each category's percentage of total expenses. Output is ordered descending
// by amount; ties keep encounter order. When total expenses are zero every
// percentage is zero. The function is pure: it never mutates its input and
// identical input yields identical output.
func ComputeCategoryTotals(transactions []*entity.TransactionWithRefs) []CategoryAggregate {
	totals := make([]CategoryAggregate, 0)
	index := make(map[string]int)
	totalExpense := decimal.Zero

	for _, tx := range transactions {
		if tx.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}

		key := tx.Transaction.CategoryID.String()
		if i, ok := index[key]; ok {
			totals[i].Amount = totals[i].Amount.Add(tx.Transaction.Amount)
		} else {
			index[key] = len(totals)
			totals = append(totals, CategoryAggregate{
				Category: tx.Category,
				Amount:   tx.Transaction.Amount,
			})
		}
		totalExpense = totalExpense.Add(tx.Transaction.Amount)
	}

	if !totalExpense.IsZero() {
		for i := range totals {
			pct := totals[i].Amount.Mul(decimal.NewFromInt(100)).Div(totalExpense)
			totals[i].Percentage, _ = pct.Round(2).Float64()
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	return totals
}

// ComputeMonthlySeries groups transactions by calendar year-month, summing
// amounts into income and expense accumulators per month. Output is ordered
// ascending by year-month; months without transactions are not synthesized.
// Labels use the Spanish short month name, e.g. "Jun 2025".
func ComputeMonthlySeries(transactions []*entity.TransactionWithRefs) []MonthlyAggregate {
	series := make([]MonthlyAggregate, 0)
	index := make(map[string]int)

	for _, tx := range transactions {
		month := time.Date(tx.Transaction.Date.Year(), tx.Transaction.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := month.Format("2006-01")

		i, ok := index[key]
		if !ok {
			i = len(series)
			index[key] = i
			series = append(series, MonthlyAggregate{
				Month:   month,
				Label:   fmt.Sprintf("%s %d", monthAbbreviations[month.Month()], month.Year()),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}

		switch tx.Transaction.Type {
		case entity.TransactionTypeIncome:
			series[i].Income = series[i].Income.Add(tx.Transaction.Amount)
		case entity.TransactionTypeExpense:
			series[i].Expense = series[i].Expense.Add(tx.Transaction.Amount)
		}
	}

	for i := range series {
		series[i].Balance = series[i].Income.Sub(series[i].Expense)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series
}
