package zcache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TODO: Allow a redis hookup

var DefaultExpiration = 3600.0

const NoExpiration = -1.0

// Cache is a typed, thread-safe store of values that expire ttlSecs after they were put.
type Cache[V any] struct {
	cache *cache.Cache
}

func secondsDur(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

func New[V any](ttlSecs float64) *Cache[V] {
	if ttlSecs == 0 {
		ttlSecs = DefaultExpiration
	}
	c := new(Cache[V])
	c.cache = cache.New(secondsDur(ttlSecs), secondsDur(ttlSecs*2))
	return c
}

func (c *Cache[V]) Put(key string, val V) {
	c.cache.Set(key, val, cache.DefaultExpiration)
}

// PutTTL stores val for ttlSecs, or forever if ttlSecs is NoExpiration.
func (c *Cache[V]) PutTTL(key string, val V, ttlSecs float64) {
	dur := cache.NoExpiration
	if ttlSecs != NoExpiration {
		dur = secondsDur(ttlSecs)
	}
	c.cache.Set(key, val, dur)
}

func (c *Cache[V]) Get(key string) (val V, got bool) {
	v, got := c.cache.Get(key)
	if got {
		val, got = v.(V)
	}
	return val, got
}

func (c *Cache[V]) Delete(key string) {
	c.cache.Delete(key)
}

func (c *Cache[V]) Count() int {
	return c.cache.ItemCount()
}
