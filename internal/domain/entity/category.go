// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the color assigned to categories created without an
// explicit display hint (transaction form or CSV import).
const DefaultCategoryColor = "#6366F1"

// Category represents a transaction category in the dashboard.
// Categories are immutable once referenced by a transaction.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Color defaulting is applied in
// the application layer before calling this constructor.
func NewCategory(name, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
