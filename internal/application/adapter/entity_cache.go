// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Entity-list cache keys. One key per entity kind, mirroring the row-store
// collections.
const (
	CacheKeyCategories   = "categories"
	CacheKeyAccounts     = "accounts"
	CacheKeyTransactions = "transactions"
)

// EntityCache is a best-effort read cache for entity lists, keyed by entity
// kind and invalidated after every successful mutation. Callers must treat a
// miss and a cache failure identically: fall through to the repository. A
// create followed by a concurrent in-flight list has no ordering guarantee;
// read-after-write consistency comes from the explicit invalidation.
type EntityCache interface {
	// GetList unmarshals the cached list for the kind into dest.
	// Returns false when the kind is absent or the cache is unreachable.
	GetList(ctx context.Context, kind string, dest any) bool

	// SetList stores the list for the kind with the cache TTL.
	SetList(ctx context.Context, kind string, value any)

	// Invalidate drops the cached lists for the given kinds.
	Invalidate(ctx context.Context, kinds ...string)
}
