// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// FindOrCreateCategoryUseCase resolves a category by name, creating it on
// demand. The transaction form and the CSV importer reference categories by
// name and may name ones that do not exist yet.
type FindOrCreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.EntityCache
}

// NewFindOrCreateCategoryUseCase creates a new FindOrCreateCategoryUseCase instance.
func NewFindOrCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, cache adapter.EntityCache) *FindOrCreateCategoryUseCase {
	return &FindOrCreateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute returns the category with the given name, creating it with the
// default color when absent.
func (uc *FindOrCreateCategoryUseCase) Execute(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	existing, err := uc.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to look up category %q: %w", name, err)
	}

	created := entity.NewCategory(name, entity.DefaultCategoryColor)
	if err := uc.categoryRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}

	uc.cache.Invalidate(ctx, adapter.CacheKeyCategories)

	return created, nil
}
