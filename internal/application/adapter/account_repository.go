// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the store.
	Create(ctx context.Context, account *entity.Account) error

	// FindAll retrieves all accounts.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByName retrieves an account by exact name match.
	// Returns domain ErrAccountNotFound when no account has the name.
	FindByName(ctx context.Context, name string) (*entity.Account, error)
}
