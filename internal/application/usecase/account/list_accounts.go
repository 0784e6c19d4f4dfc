// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// ListAccountsUseCase handles listing all accounts through the read cache.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.EntityCache
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository, cache adapter.EntityCache) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute retrieves all accounts, serving from the cache when possible.
// Balances come straight from the store — they are never recomputed here.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) ([]*entity.Account, error) {
	var cached []*entity.Account
	if uc.cache.GetList(ctx, adapter.CacheKeyAccounts, &cached) {
		return cached, nil
	}

	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	uc.cache.SetList(ctx, adapter.CacheKeyAccounts, accounts)
	return accounts, nil
}
