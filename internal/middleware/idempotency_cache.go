package middleware

import (
	"sync"
	"time"

	"github.com/guttosm/export-go/internal/metrics"
)

// IdempotencyCache stores responses by hashed idempotency key. Entries expire
// after the TTL; when full, the oldest entry is evicted.
type IdempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewIdempotencyCache creates a cache and starts its cleanup loop.
// Call Close to stop the loop.
func NewIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	c := newIdempotencyCache(ttl, maxEntries)
	go c.startCleanup(time.Minute)
	return c
}

func newIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	if maxEntries <= 0 {
		maxEntries = IdempotencyMaxEntries
	}
	return &IdempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
}

// Get retrieves a cached response that has not expired.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a cached response.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.removeExpired()
		if len(c.items) >= c.maxEntries {
			c.evictOldest()
		}
	}

	resp.Timestamp = c.now()
	c.items[key] = resp
}

// Len returns the number of stored entries, expired or not.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the cleanup loop.
func (c *IdempotencyCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *IdempotencyCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeExpired()
}

// removeExpired must be called with mu held.
func (c *IdempotencyCache) removeExpired() {
	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}

// evictOldest must be called with mu held.
func (c *IdempotencyCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, resp := range c.items {
		if oldestKey == "" || resp.Timestamp.Before(oldest) {
			oldestKey, oldest = key, resp.Timestamp
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
		metrics.RecordIdempotencyOperation("evict", "ok")
	}
}
