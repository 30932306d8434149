// Package cache keeps JSON-encoded values in an in-process freecache.
package cache

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// JSONCache stores values as JSON under string keys with a fixed TTL.
// freecache is safe for concurrent use.
type JSONCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// NewJSONCache allocates sizeMB megabytes up front.
func NewJSONCache(sizeMB int, ttl time.Duration) *JSONCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &JSONCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

// Get decodes the cached value of key into dst. It reports false on a miss or
// on a value that no longer decodes.
func (c *JSONCache) Get(key string, dst any) bool {
	raw, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("cache get %s: %s", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Errorf("cache decode %s: %s", key, err)
		c.cache.Del([]byte(key))
		return false
	}
	return true
}

func (c *JSONCache) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Errorf("cache encode %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), raw, c.expireSeconds()); err != nil {
		log.Errorf("cache set %s: %s", key, err)
		return
	}
	log.Debugf("cached %s for %s", key, c.ttl)
}

// expireSeconds rounds the TTL up to whole seconds. freecache reads 0 as
// "never expire", so only a non-positive TTL maps to it.
func (c *JSONCache) expireSeconds() int {
	if c.ttl <= 0 {
		return 0
	}
	return int(math.Ceil(c.ttl.Seconds()))
}

func (c *JSONCache) Delete(key string) {
	c.cache.Del([]byte(key))
}
