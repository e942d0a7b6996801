// Package cache provides the server-side result cache. The core pipeline
// stays stateless; only the tool layer consults the cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/typeforge/typeforge-mcp/pkg/types"
)

// ResultCache is a thread-safe LRU over generation results.
type ResultCache struct {
	cache *lru.Cache[string, *types.GenerateResult]
}

// New creates a cache holding at most maxItems results.
func New(maxItems int) (*ResultCache, error) {
	c, err := lru.New[string, *types.GenerateResult](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: c}, nil
}

// Key derives a stable cache key from everything that influences the output.
func Key(req *types.GenerateRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s\x00", req.Name, req.Format, req.Output, req.Select)
	if req.Options != nil {
		fmt.Fprintf(h, "%+v", *req.Options)
	}
	h.Write([]byte{0})
	h.Write([]byte(req.Input))
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached result by key.
func (c *ResultCache) Get(key string) (*types.GenerateResult, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a result.
func (c *ResultCache) Put(key string, result *types.GenerateResult) {
	c.cache.Add(key, result)
}

// Len returns the current number of cached results.
func (c *ResultCache) Len() int {
	return c.cache.Len()
}
