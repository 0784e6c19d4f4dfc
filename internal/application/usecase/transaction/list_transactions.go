// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// ListTransactionsUseCase lists all transactions with their category and
// account references resolved, ordered by date descending.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
	cache           adapter.EntityCache
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
	cache adapter.EntityCache,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		cache:           cache,
	}
}

// Execute retrieves the transaction list. Categories and accounts are
// fetched first so every reference resolves; a transaction pointing at an
// unknown category or account is a fetch-ordering bug and surfaces as an
// internal error, never as a half-resolved row.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) ([]*entity.TransactionWithRefs, error) {
	categories, accounts, err := uc.lookupMaps(ctx)
	if err != nil {
		return nil, err
	}

	var transactions []*entity.Transaction
	if !uc.cache.GetList(ctx, adapter.CacheKeyTransactions, &transactions) {
		transactions, err = uc.transactionRepo.FindAllOrdered(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		uc.cache.SetList(ctx, adapter.CacheKeyTransactions, transactions)
	}

	resolved := make([]*entity.TransactionWithRefs, 0, len(transactions))
	for _, tx := range transactions {
		withRefs, err := resolveRefs(tx, categories, accounts)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, withRefs)
	}

	return resolved, nil
}

// lookupMaps fetches categories and accounts (cached) keyed by ID.
func (uc *ListTransactionsUseCase) lookupMaps(ctx context.Context) (map[uuid.UUID]*entity.Category, map[uuid.UUID]*entity.Account, error) {
	var categoryList []*entity.Category
	if !uc.cache.GetList(ctx, adapter.CacheKeyCategories, &categoryList) {
		var err error
		categoryList, err = uc.categoryRepo.FindAll(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list categories: %w", err)
		}
		uc.cache.SetList(ctx, adapter.CacheKeyCategories, categoryList)
	}

	var accountList []*entity.Account
	if !uc.cache.GetList(ctx, adapter.CacheKeyAccounts, &accountList) {
		var err error
		accountList, err = uc.accountRepo.FindAll(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		uc.cache.SetList(ctx, adapter.CacheKeyAccounts, accountList)
	}

	categories := make(map[uuid.UUID]*entity.Category, len(categoryList))
	for _, category := range categoryList {
		categories[category.ID] = category
	}

	accounts := make(map[uuid.UUID]*entity.Account, len(accountList))
	for _, account := range accountList {
		accounts[account.ID] = account
	}

	return categories, accounts, nil
}

func resolveRefs(
	tx *entity.Transaction,
	categories map[uuid.UUID]*entity.Category,
	accounts map[uuid.UUID]*entity.Account,
) (*entity.TransactionWithRefs, error) {
	category, ok := categories[tx.CategoryID]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnresolvedReference,
			fmt.Sprintf("transaction %s references unknown category %s", tx.ID, tx.CategoryID),
			domainerror.ErrUnresolvedReference,
		)
	}

	account, ok := accounts[tx.AccountID]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnresolvedReference,
			fmt.Sprintf("transaction %s references unknown account %s", tx.ID, tx.AccountID),
			domainerror.ErrUnresolvedReference,
		)
	}

	return &entity.TransactionWithRefs{
		Transaction: tx,
		Category:    category,
		Account:     account,
	}, nil
}
