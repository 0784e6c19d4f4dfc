// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name           string
	InitialBalance decimal.Decimal
	Type           entity.AccountType
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.EntityCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, cache adapter.EntityCache) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"type must be: savings, checking, credit, investment or other",
			domainerror.ErrInvalidAccountType,
		)
	}

	created := entity.NewAccount(name, input.InitialBalance, input.Type)
	if err := uc.accountRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.cache.Invalidate(ctx, adapter.CacheKeyAccounts)

	return &CreateAccountOutput{Account: created}, nil
}
