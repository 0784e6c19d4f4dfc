package dto

import (
	"github.com/finanzas-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-dashboard/backend/internal/domain/valueobject"
)

// DashboardSummaryResponse carries the header totals with display renderings.
type DashboardSummaryResponse struct {
	TotalBalance        string `json:"total_balance"`
	TotalBalanceDisplay string `json:"total_balance_display"`
	TotalIncome         string `json:"total_income"`
	TotalIncomeDisplay  string `json:"total_income_display"`
	TotalExpense        string `json:"total_expense"`
	TotalExpenseDisplay string `json:"total_expense_display"`
	SavingsRate         string `json:"savings_rate"`
}

// CategoryTotalResponse is one slice of the category breakdown chart.
type CategoryTotalResponse struct {
	CategoryID        string  `json:"category_id"`
	CategoryName      string  `json:"category_name"`
	Color             string  `json:"color"`
	Amount            string  `json:"amount"`
	AmountDisplay     string  `json:"amount_display"`
	Percentage        float64 `json:"percentage"`
	PercentageDisplay string  `json:"percentage_display"`
}

// MonthlyPointResponse is one bar group of the monthly chart.
type MonthlyPointResponse struct {
	Month          string `json:"month"`
	Income         string `json:"income"`
	IncomeDisplay  string `json:"income_display"`
	Expense        string `json:"expense"`
	ExpenseDisplay string `json:"expense_display"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

// DashboardResponse represents the full dashboard payload.
type DashboardResponse struct {
	Summary        DashboardSummaryResponse `json:"summary"`
	CategoryTotals []CategoryTotalResponse  `json:"category_totals"`
	MonthlySeries  []MonthlyPointResponse   `json:"monthly_series"`
	Accounts       []AccountResponse        `json:"accounts"`
}

// ToDashboardResponse converts the dashboard output to its response DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	categoryTotals := make([]CategoryTotalResponse, len(output.CategoryTotals))
	for i, agg := range output.CategoryTotals {
		categoryTotals[i] = CategoryTotalResponse{
			CategoryID:        agg.Category.ID.String(),
			CategoryName:      agg.Category.Name,
			Color:             agg.Category.Color,
			Amount:            agg.Amount.String(),
			AmountDisplay:     valueobject.FormatCurrency(agg.Amount),
			Percentage:        agg.Percentage,
			PercentageDisplay: valueobject.FormatPercentage(agg.Percentage),
		}
	}

	monthlySeries := make([]MonthlyPointResponse, len(output.MonthlySeries))
	for i, point := range output.MonthlySeries {
		monthlySeries[i] = MonthlyPointResponse{
			Month:          point.Label,
			Income:         point.Income.String(),
			IncomeDisplay:  valueobject.FormatCurrency(point.Income),
			Expense:        point.Expense.String(),
			ExpenseDisplay: valueobject.FormatCurrency(point.Expense),
			Balance:        point.Balance.String(),
			BalanceDisplay: valueobject.FormatCurrency(point.Balance),
		}
	}

	return DashboardResponse{
		Summary: DashboardSummaryResponse{
			TotalBalance:        output.Summary.TotalBalance.String(),
			TotalBalanceDisplay: valueobject.FormatCurrency(output.Summary.TotalBalance),
			TotalIncome:         output.Summary.TotalIncome.String(),
			TotalIncomeDisplay:  valueobject.FormatCurrency(output.Summary.TotalIncome),
			TotalExpense:        output.Summary.TotalExpense.String(),
			TotalExpenseDisplay: valueobject.FormatCurrency(output.Summary.TotalExpense),
			SavingsRate:         valueobject.FormatPercentage(output.Summary.SavingsRate),
		},
		CategoryTotals: categoryTotals,
		MonthlySeries:  monthlySeries,
		Accounts:       ToAccountListResponse(output.Accounts).Accounts,
	}
}
