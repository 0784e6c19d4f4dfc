package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/category"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
// Either CategoryID or CategoryName must be set; when only the name is
// given the category is created on the fly if it does not exist yet.
type CreateTransactionInput struct {
	Type          entity.TransactionType
	Description   string
	CategoryID    uuid.UUID
	CategoryName  string
	AccountID     uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Notes         string
	ReceiptURL    string
}

// CreateTransactionUseCase handles transaction creation. Persisting a
// transaction also applies its signed amount to the account balance in the
// same database transaction.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	findOrCreate    *category.FindOrCreateCategoryUseCase
	cache           adapter.EntityCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	findOrCreate *category.FindOrCreateCategoryUseCase,
	cache adapter.EntityCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		findOrCreate:    findOrCreate,
		cache:           cache,
	}
}

// Execute validates the input, resolves the category and account, persists
// the transaction and returns it with references resolved.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.TransactionWithRefs, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resolvedCategory, err := uc.resolveCategory(ctx, input)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(
		input.Type,
		input.Description,
		resolvedCategory.ID,
		account.ID,
		input.Date,
		input.Amount,
		input.PaymentMethod,
		input.Notes,
		input.ReceiptURL,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Balance moved, so the cached account list is stale too.
	uc.cache.Invalidate(ctx, adapter.CacheKeyTransactions, adapter.CacheKeyAccounts)

	account.Balance = account.Balance.Add(tx.BalanceDelta())

	return &entity.TransactionWithRefs{
		Transaction: tx,
		Category:    resolvedCategory,
		Account:     account,
	}, nil
}

func (uc *CreateTransactionUseCase) resolveCategory(ctx context.Context, input CreateTransactionInput) (*entity.Category, error) {
	if input.CategoryID != uuid.Nil {
		return uc.categoryRepo.FindByID(ctx, input.CategoryID)
	}
	return uc.findOrCreate.Execute(ctx, input.CategoryName)
}

func validateInput(input CreateTransactionInput) error {
	if !input.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("transaction type must be %q or %q", entity.TransactionTypeExpense, entity.TransactionTypeIncome),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"transaction description is required",
			domainerror.ErrDescriptionRequired,
		)
	}

	if input.CategoryID == uuid.Nil && input.CategoryName == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"transaction category is required",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.AccountID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"transaction account is required",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"transaction date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if !input.PaymentMethod.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("unknown payment method %q", input.PaymentMethod),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return nil
}
