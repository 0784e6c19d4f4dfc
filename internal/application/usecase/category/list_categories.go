// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// ListCategoriesUseCase handles listing all categories through the read cache.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.EntityCache
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, cache adapter.EntityCache) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute retrieves all categories, serving from the cache when possible.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*entity.Category, error) {
	var cached []*entity.Category
	if uc.cache.GetList(ctx, adapter.CacheKeyCategories, &cached) {
		return cached, nil
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	uc.cache.SetList(ctx, adapter.CacheKeyCategories, categories)
	return categories, nil
}
