package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/usecase/category"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// fakeTransactionRepo collects created transactions in memory.
type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.created = append(r.created, tx)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, txs []*entity.Transaction) (int, error) {
	r.created = append(r.created, txs...)
	return len(txs), nil
}

func (r *fakeTransactionRepo) FindAllOrdered(_ context.Context) ([]*entity.Transaction, error) {
	return r.created, nil
}

// fakeAccountRepo resolves accounts by name from a fixed set.
type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]*entity.Account, error) {
	return r.accounts, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByName(_ context.Context, name string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Name == name {
			return account, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

// fakeCategoryRepo resolves categories by name from a growing set.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	r.categories = append(r.categories, cat)
	return nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, cat := range r.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, cat := range r.categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// fakeCache never hits.
type fakeCache struct{}

func (fakeCache) GetList(context.Context, string, any) bool { return false }
func (fakeCache) SetList(context.Context, string, any)      {}
func (fakeCache) Invalidate(context.Context, ...string)     {}

func newImportFixture() (*ImportCSVUseCase, *fakeTransactionRepo, *fakeCategoryRepo) {
	txRepo := &fakeTransactionRepo{}
	accountRepo := &fakeAccountRepo{accounts: []*entity.Account{
		entity.NewAccount("Ahorros", decimal.Zero, entity.AccountTypeSavings),
	}}
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{
		entity.NewCategory("Alimentación", "#FF0000"),
	}}
	findOrCreate := category.NewFindOrCreateCategoryUseCase(categoryRepo, fakeCache{})

	return NewImportCSVUseCase(txRepo, accountRepo, findOrCreate, fakeCache{}), txRepo, categoryRepo
}

func TestImportCSV(t *testing.T) {
	t.Run("valid rows import", func(t *testing.T) {
		uc, txRepo, _ := newImportFixture()

		csv := "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n" +
			"expense,Mercado,Alimentación,Ahorros,15/06/2025,250000,debit,semanal\n" +
			"income,Salario,Alimentación,Ahorros,01/06/2025,4500000,transfer,\n"

		output, err := uc.Execute(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 2 {
			t.Errorf("expected 2 created, got %d", output.Created)
		}
		if len(output.Errors) != 0 {
			t.Errorf("expected no row errors, got %v", output.Errors)
		}

		first := txRepo.created[0]
		if first.Date.Day() != 15 || first.Date.Month() != time.June {
			t.Errorf("date must read day first, got %s", first.Date)
		}
		if !first.Amount.Equal(decimal.NewFromInt(250_000)) {
			t.Errorf("expected amount 250000, got %s", first.Amount)
		}
	})

	t.Run("unknown category is created on the fly", func(t *testing.T) {
		uc, _, categoryRepo := newImportFixture()

		csv := "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n" +
			"expense,Cine,Ocio,Ahorros,20/06/2025,45000,cash,\n"

		output, err := uc.Execute(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 1 {
			t.Errorf("expected 1 created, got %d", output.Created)
		}

		if _, err := categoryRepo.FindByName(context.Background(), "Ocio"); err != nil {
			t.Error("expected category Ocio to exist after import")
		}
	})

	t.Run("bad rows are collected, good rows still import", func(t *testing.T) {
		uc, txRepo, _ := newImportFixture()

		csv := "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n" +
			"expense,Mercado,Alimentación,Ahorros,15/06/2025,250000,debit,\n" +
			"expense,Mal,Alimentación,Desconocida,15/06/2025,100,debit,\n" +
			"expense,Mal fecha,Alimentación,Ahorros,2025-06-15,100,debit,\n" +
			"regalo,Mal tipo,Alimentación,Ahorros,15/06/2025,100,debit,\n"

		output, err := uc.Execute(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 1 {
			t.Errorf("expected 1 created, got %d", output.Created)
		}
		if len(output.Errors) != 3 {
			t.Fatalf("expected 3 row errors, got %d: %v", len(output.Errors), output.Errors)
		}
		if output.Errors[0].Line != 3 {
			t.Errorf("expected first error on line 3, got %d", output.Errors[0].Line)
		}
		if len(txRepo.created) != 1 {
			t.Errorf("expected 1 persisted row, got %d", len(txRepo.created))
		}
	})

	t.Run("wrong header rejects the file", func(t *testing.T) {
		uc, _, _ := newImportFixture()

		csv := "type,description,category\nexpense,Mercado,Alimentación\n"

		_, err := uc.Execute(context.Background(), strings.NewReader(csv))

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txErr.Code != domainerror.ErrCodeInvalidCSVHeader {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCSVHeader, txErr.Code)
		}
	})

	t.Run("header only is empty", func(t *testing.T) {
		uc, _, _ := newImportFixture()

		csv := "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n"

		_, err := uc.Execute(context.Background(), strings.NewReader(csv))

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txErr.Code != domainerror.ErrCodeEmptyCSV {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyCSV, txErr.Code)
		}
	})
}

func TestExportCSVRoundTrip(t *testing.T) {
	uc, txRepo, _ := newImportFixture()

	csv := "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n" +
		"expense,Mercado,Alimentación,Ahorros,15/06/2025,250000,debit,semanal\n"

	if _, err := uc.Execute(context.Background(), strings.NewReader(csv)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	// Re-export through the list use case backed by the same fakes.
	list := NewListTransactionsUseCase(txRepo, &fakeCategoryRepo{categories: []*entity.Category{
		{ID: txRepo.created[0].CategoryID, Name: "Alimentación"},
	}}, &fakeAccountRepo{accounts: []*entity.Account{
		{ID: txRepo.created[0].AccountID, Name: "Ahorros"},
	}}, fakeCache{})

	var sb strings.Builder
	rows, err := NewExportCSVUseCase(list).Execute(context.Background(), &sb)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}

	got := sb.String()
	if !strings.HasPrefix(got, "tipo,descripcion,categoria,cuenta,fecha,monto,metodo_pago,notas\n") {
		t.Errorf("export must start with the template header, got %q", got)
	}
	if !strings.Contains(got, "expense,Mercado,Alimentación,Ahorros,15/06/2025,250000,debit,semanal") {
		t.Errorf("unexpected export body: %q", got)
	}
}
