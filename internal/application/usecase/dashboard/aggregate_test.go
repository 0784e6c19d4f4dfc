package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

func expense(category *entity.Category, account *entity.Account, date time.Time, amount int64) *entity.TransactionWithRefs {
	return withRefs(entity.TransactionTypeExpense, category, account, date, amount)
}

func income(category *entity.Category, account *entity.Account, date time.Time, amount int64) *entity.TransactionWithRefs {
	return withRefs(entity.TransactionTypeIncome, category, account, date, amount)
}

func withRefs(txType entity.TransactionType, category *entity.Category, account *entity.Account, date time.Time, amount int64) *entity.TransactionWithRefs {
	tx := entity.NewTransaction(
		txType,
		"test",
		category.ID,
		account.ID,
		date,
		decimal.NewFromInt(amount),
		entity.PaymentMethodCash,
		"",
		"",
	)
	return &entity.TransactionWithRefs{Transaction: tx, Category: category, Account: account}
}

func TestComputeCategoryTotals(t *testing.T) {
	food := entity.NewCategory("Alimentación", "#FF0000")
	transport := entity.NewCategory("Transporte", "#00FF00")
	leisure := entity.NewCategory("Ocio", "#0000FF")
	account := entity.NewAccount("Ahorros", decimal.Zero, entity.AccountTypeSavings)
	june := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	transactions := []*entity.TransactionWithRefs{
		expense(food, account, june, 300_000),
		expense(transport, account, june, 100_000),
		expense(food, account, june, 200_000),
		expense(leisure, account, june, 400_000),
		income(food, account, june, 9_000_000),
	}

	totals := ComputeCategoryTotals(transactions)

	t.Run("income is excluded and categories are grouped", func(t *testing.T) {
		if len(totals) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(totals))
		}
	})

	t.Run("ordered descending by amount", func(t *testing.T) {
		if totals[0].Category.Name != "Alimentación" || totals[1].Category.Name != "Ocio" {
			t.Errorf("unexpected order: %s, %s, %s",
				totals[0].Category.Name, totals[1].Category.Name, totals[2].Category.Name)
		}
		if !totals[0].Amount.Equal(decimal.NewFromInt(500_000)) {
			t.Errorf("expected food total 500000, got %s", totals[0].Amount)
		}
	})

	t.Run("percentages sum to roughly 100", func(t *testing.T) {
		sum := 0.0
		for _, agg := range totals {
			sum += agg.Percentage
		}
		if sum < 99.99 || sum > 100.01 {
			t.Errorf("expected percentage sum near 100, got %f", sum)
		}
	})

	t.Run("percentage of largest category", func(t *testing.T) {
		if totals[0].Percentage != 50.0 {
			t.Errorf("expected 50%%, got %f", totals[0].Percentage)
		}
	})
}

func TestComputeCategoryTotalsEdgeCases(t *testing.T) {
	account := entity.NewAccount("Ahorros", decimal.Zero, entity.AccountTypeSavings)
	salary := entity.NewCategory("Salario", "#AAAAAA")
	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no transactions yields empty non-nil slice", func(t *testing.T) {
		totals := ComputeCategoryTotals(nil)
		if totals == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(totals) != 0 {
			t.Errorf("expected no totals, got %d", len(totals))
		}
	})

	t.Run("income only yields no totals", func(t *testing.T) {
		totals := ComputeCategoryTotals([]*entity.TransactionWithRefs{
			income(salary, account, june, 1_000_000),
		})
		if len(totals) != 0 {
			t.Errorf("expected no totals, got %d", len(totals))
		}
	})

	t.Run("equal amounts keep encounter order", func(t *testing.T) {
		first := entity.NewCategory("Primera", "#111111")
		second := entity.NewCategory("Segunda", "#222222")

		totals := ComputeCategoryTotals([]*entity.TransactionWithRefs{
			expense(first, account, june, 100_000),
			expense(second, account, june, 100_000),
		})
		if len(totals) != 2 {
			t.Fatalf("expected 2 totals, got %d", len(totals))
		}
		if totals[0].Category.Name != "Primera" {
			t.Errorf("tie must keep encounter order, got %s first", totals[0].Category.Name)
		}
	})

	t.Run("idempotent over identical input", func(t *testing.T) {
		food := entity.NewCategory("Alimentación", "#FF0000")
		input := []*entity.TransactionWithRefs{
			expense(food, account, june, 300_000),
			expense(food, account, june, 200_000),
		}

		first := ComputeCategoryTotals(input)
		second := ComputeCategoryTotals(input)

		if len(first) != len(second) {
			t.Fatalf("length differs between runs")
		}
		for i := range first {
			if !first[i].Amount.Equal(second[i].Amount) || first[i].Percentage != second[i].Percentage {
				t.Errorf("run results differ at %d", i)
			}
		}
	})
}

func TestComputeMonthlySeries(t *testing.T) {
	food := entity.NewCategory("Alimentación", "#FF0000")
	salary := entity.NewCategory("Salario", "#AAAAAA")
	account := entity.NewAccount("Ahorros", decimal.Zero, entity.AccountTypeSavings)

	may := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)

	// Date-descending input, the repository order.
	transactions := []*entity.TransactionWithRefs{
		expense(food, account, june, 400_000),
		income(salary, account, june, 2_000_000),
		income(salary, account, may, 1_800_000),
		expense(food, account, may, 500_000),
	}

	series := ComputeMonthlySeries(transactions)

	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}

	t.Run("ascending order with Spanish labels", func(t *testing.T) {
		if series[0].Label != "May 2025" || series[1].Label != "Jun 2025" {
			t.Errorf("unexpected labels: %q, %q", series[0].Label, series[1].Label)
		}
	})

	t.Run("sums per month", func(t *testing.T) {
		if !series[0].Income.Equal(decimal.NewFromInt(1_800_000)) {
			t.Errorf("expected May income 1800000, got %s", series[0].Income)
		}
		if !series[0].Expense.Equal(decimal.NewFromInt(500_000)) {
			t.Errorf("expected May expense 500000, got %s", series[0].Expense)
		}
	})

	t.Run("balance is per-month, not running", func(t *testing.T) {
		if !series[0].Balance.Equal(decimal.NewFromInt(1_300_000)) {
			t.Errorf("expected May balance 1300000, got %s", series[0].Balance)
		}
		if !series[1].Balance.Equal(decimal.NewFromInt(1_600_000)) {
			t.Errorf("expected Jun balance 1600000, got %s", series[1].Balance)
		}
	})

	t.Run("months without transactions are not synthesized", func(t *testing.T) {
		march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		withGap := append(transactions, expense(food, account, march, 100_000))
		gapSeries := ComputeMonthlySeries(withGap)
		if len(gapSeries) != 3 {
			t.Errorf("expected 3 months (gap not filled), got %d", len(gapSeries))
		}
	})
}
