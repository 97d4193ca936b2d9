package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ cache.CacheWithMetrics = (*ShardedCache)(nil)

func batchFor(order string) model.QRBatchResult {
	return model.QRBatchResult{OrderNumber: order, TotalUniqueCodes: 1}
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func() *ttlCache
		key       string
		wantOrder string
		wantFound bool
	}{
		{
			name: "returns value when present",
			setup: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("a", batchFor("ORD-HM-2501-01"))
				return c
			},
			key:       "a",
			wantOrder: "ORD-HM-2501-01",
			wantFound: true,
		},
		{
			name:  "misses unknown key",
			setup: func() *ttlCache { return newTTLCache(10, time.Minute) },
			key:   "missing",
		},
		{
			name: "misses expired entry",
			setup: func() *ttlCache {
				c := newTTLCache(10, 20*time.Millisecond)
				c.Set("a", batchFor("ORD-HM-2501-01"))
				time.Sleep(50 * time.Millisecond)
				return c
			},
			key: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setup()
			defer c.Stop()

			got, found := c.Get(tt.key)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantOrder, got.OrderNumber)
		})
	}
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", batchFor("A"))
	c.Set("b", batchFor("B"))
	_, _ = c.Get("a")
	c.Set("c", batchFor("C"))

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	_, foundC := c.Get("c")
	assert.True(t, foundA)
	assert.False(t, foundB)
	assert.True(t, foundC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_SetUpdatesExisting(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", batchFor("A"))
	c.Set("a", batchFor("A2"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A2", got.OrderNumber)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", batchFor("A"))
	c.Set("b", batchFor("B"))

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c := newTTLCache(10, 10*time.Millisecond)
	defer c.Stop()

	c.Set("a", batchFor("A"))
	time.Sleep(30 * time.Millisecond)
	c.cleanup()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"zero uses default", 0, 16},
		{"negative uses default", -1, 16},
		{"rounds up to power of two", 3, 4},
		{"keeps power of two", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewShardedCache(64, time.Minute, tt.numShards)
			defer sc.Stop()
			assert.Len(t, sc.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	for i := 0; i < 10; i++ {
		sc.Set(fmt.Sprintf("key-%d", i), batchFor(fmt.Sprintf("ORD-HM-2501-%02d", i)))
	}
	got, ok := sc.Get("key-3")
	require.True(t, ok)
	assert.Equal(t, "ORD-HM-2501-03", got.OrderNumber)

	sc.Invalidate("key-3")
	_, ok = sc.Get("key-3")
	assert.False(t, ok)

	m := sc.Metrics()
	assert.Equal(t, 9, m.Size)
	assert.Equal(t, 64, m.Capacity)
	assert.Equal(t, int64(1), m.Hits)

	sc.Clear()
	assert.Equal(t, 0, sc.Metrics().Size)
}

func TestShardedCache_Concurrent(t *testing.T) {
	sc := NewShardedCache(128, time.Minute, 8)
	defer sc.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("%d-%d", g, i%10)
				sc.Set(key, batchFor(key))
				_, _ = sc.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, sc.Metrics().Size, 128)
}
