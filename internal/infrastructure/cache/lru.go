package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nutriscan/backend/internal/domain"
)

// DefaultCapacity bounds the resolver memoization cache.
const DefaultCapacity = 1000

// ResultCache is a bounded, least-recently-used cache of resolved ingredient
// results, keyed by exact token text. It is shared across all analysis calls
// within a process and is safe for concurrent use. Purely a latency
// optimization: a miss recomputes an identical result.
type ResultCache struct {
	lru *lru.Cache[string, domain.IngredientResult]
}

// NewResultCache creates a cache with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewResultCache(capacity int) (*ResultCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := lru.New[string, domain.IngredientResult](capacity)
	if err != nil {
		return nil, err
	}
	return &ResultCache{lru: l}, nil
}

// Get retrieves a memoized result for the token.
func (c *ResultCache) Get(token string) (domain.IngredientResult, bool) {
	return c.lru.Get(token)
}

// Add stores a result for the token, evicting the least recently used entry
// when the cache is full.
func (c *ResultCache) Add(token string, result domain.IngredientResult) {
	c.lru.Add(token, result)
}

// Len returns the current number of cached tokens.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}

// Purge drops all cached entries. Used for test isolation.
func (c *ResultCache) Purge() {
	c.lru.Purge()
}
