package sync

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/vitalisapp/vitalis/vitalis/player"
)

// AggregateCache is the fast local cache of aggregate snapshots, written
// synchronously with every mutation and read on cold start before the remote
// pull resolves.
type AggregateCache struct {
	cache *lru.Cache
}

func NewAggregateCache(size int) *AggregateCache {
	cache, _ := lru.New(size)
	return &AggregateCache{cache: cache}
}

func (c *AggregateCache) Write(userID string, entry player.CacheEntry) {
	c.cache.Add(userID, entry)
}

func (c *AggregateCache) Get(userID string) (player.CacheEntry, bool) {
	v, ok := c.cache.Get(userID)
	if !ok {
		return player.CacheEntry{}, false
	}
	entry, ok := v.(player.CacheEntry)
	return entry, ok
}

func (c *AggregateCache) Remove(userID string) {
	c.cache.Remove(userID)
}

// UserCacheWriter binds the cache to one user so the player store can write
// entries without knowing its own cache key.
type UserCacheWriter struct {
	Cache  *AggregateCache
	UserID string
}

func (w UserCacheWriter) WriteAggregate(entry player.CacheEntry) {
	w.Cache.Write(w.UserID, entry)
}
