// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// Summary represents the dashboard header totals.
type Summary struct {
	TotalBalance decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	SavingsRate  float64
}

// GetDashboardOutput represents the full dashboard payload.
type GetDashboardOutput struct {
	Summary        Summary
	CategoryTotals []CategoryAggregate
	MonthlySeries  []MonthlyAggregate
	Accounts       []*entity.Account
}

// AccountLister provides the accounts for the balance summary.
type AccountLister interface {
	Execute(ctx context.Context) ([]*entity.Account, error)
}

// GetDashboardUseCase assembles the dashboard aggregates. Both aggregate
// lists are recomputed from the current transaction list on every call so the
// displayed totals can never diverge from their source.
type GetDashboardUseCase struct {
	listTransactions *transaction.ListTransactionsUseCase
	listAccounts     AccountLister
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	listTransactions *transaction.ListTransactionsUseCase,
	listAccounts AccountLister,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		listTransactions: listTransactions,
		listAccounts:     listAccounts,
	}
}

// Execute retrieves transactions and accounts and derives the aggregates.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	transactions, err := uc.listTransactions.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	accounts, err := uc.listAccounts.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	totalBalance := decimal.Zero
	for _, account := range accounts {
		totalBalance = totalBalance.Add(account.Balance)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Transaction.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tx.Transaction.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(tx.Transaction.Amount)
		}
	}

	var savingsRate float64
	if !totalIncome.IsZero() {
		rate := totalIncome.Sub(totalExpense).Mul(decimal.NewFromInt(100)).Div(totalIncome)
		savingsRate, _ = rate.Round(2).Float64()
	}

	return &GetDashboardOutput{
		Summary: Summary{
			TotalBalance: totalBalance,
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			SavingsRate:  savingsRate,
		},
		CategoryTotals: ComputeCategoryTotals(transactions),
		MonthlySeries:  ComputeMonthlySeries(transactions),
		Accounts:       accounts,
	}, nil
}
