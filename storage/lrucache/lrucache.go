package lrucache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/alternun/gbt-minting-go/storage"
)

// LRUCache implements the storage.Cacher interface over hashicorp's LRU cache
type LRUCache struct {
	cache *lru.Cache
}

// NewCache creates a new LRU cache instance with the given capacity
func NewCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, storage.ErrInvalidCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &LRUCache{cache: cache}, nil
}

// Put adds a value to the cache. Returns true if an eviction occurred
func (c *LRUCache) Put(key []byte, value []byte) bool {
	return c.cache.Add(string(key), value)
}

// Get looks up a key's value from the cache
func (c *LRUCache) Get(key []byte) ([]byte, bool) {
	val, ok := c.cache.Get(string(key))
	if !ok {
		return nil, false
	}

	buff, ok := val.([]byte)
	return buff, ok
}

// Remove removes the provided key from the cache
func (c *LRUCache) Remove(key []byte) {
	c.cache.Remove(string(key))
}

// Clear is used to completely clear the cache
func (c *LRUCache) Clear() {
	c.cache.Purge()
}

// Len returns the number of items in the cache
func (c *LRUCache) Len() int {
	return c.cache.Len()
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *LRUCache) IsInterfaceNil() bool {
	return c == nil
}
