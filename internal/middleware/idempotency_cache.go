package middleware

import (
	"sync"
	"time"
)

// idempotencyCache stores replayable responses and the keys still being processed.
type idempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cachedResponse
	inFlight map[string]struct{}
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items:    make(map[string]*cachedResponse),
		inFlight: make(map[string]struct{}),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns an unexpired cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Begin marks key as in flight. It returns false when another request holds it.
func (c *idempotencyCache) Begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

// Finish releases key and stores resp when it is not nil.
func (c *idempotencyCache) Finish(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inFlight, key)
	if resp != nil {
		resp.Timestamp = time.Now()
		c.items[key] = resp
	}
}

// Stop ends the cleanup goroutine.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
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

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
