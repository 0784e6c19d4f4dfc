package cache

import (
	"context"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
)

// noopCache is used when no Redis address is configured. Every read is a
// miss and writes are discarded.
type noopCache struct{}

// NewNoopCache creates an entity cache that caches nothing.
func NewNoopCache() adapter.EntityCache {
	return noopCache{}
}

func (noopCache) GetList(context.Context, string, any) bool { return false }

func (noopCache) SetList(context.Context, string, any) {}

func (noopCache) Invalidate(context.Context, ...string) {}
