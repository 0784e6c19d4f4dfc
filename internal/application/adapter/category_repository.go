// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the store.
	Create(ctx context.Context, category *entity.Category) error

	// FindAll retrieves all categories.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by exact name match.
	// Returns domain ErrCategoryNotFound when no category has the name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
}
