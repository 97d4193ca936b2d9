// Package cache defines the preview cache contract.
package cache

import "github.com/guttosm/trace-service/internal/domain/model"

// Cache stores generated batches by request fingerprint.
type Cache interface {
	Get(key string) (model.QRBatchResult, bool)
	Set(key string, value model.QRBatchResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
