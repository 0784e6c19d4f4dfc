// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction and applies its balance delta to the
	// referenced account in a single store transaction. Account balances stay
	// authoritative at the store; readers never recompute them.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates multiple transactions (CSV import), applying every
	// balance delta atomically. Returns the number of rows created.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) (int, error)

	// FindAllOrdered retrieves all transactions ordered by date descending.
	FindAllOrdered(ctx context.Context) ([]*entity.Transaction, error)
}
