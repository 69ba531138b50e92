package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/metrics"
)

const rowsKeyTpl = "%s:rows:%s" // ${prefix}:rows:${source}

// CachedSource keeps the last fetched rows of a source in redis for ttl.
// Redis trouble never fails a read; it only costs a refetch.
type CachedSource struct {
	inner Source
	redis *redis.Client
	key   string
	ttl   time.Duration
}

func NewCachedSource(inner Source, client *redis.Client, prefix string, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner: inner,
		redis: client,
		key:   fmt.Sprintf(rowsKeyTpl, prefix, inner.Name()),
		ttl:   ttl,
	}
}

func (c *CachedSource) Name() string {
	return c.inner.Name()
}

func (c *CachedSource) Rows(ctx context.Context) ([][]string, error) {
	data, err := c.redis.Get(ctx, c.key).Bytes()
	switch {
	case err == redis.Nil:
		metrics.SourceCacheLookups.WithLabelValues(c.Name(), "miss").Inc()
	case err != nil:
		metrics.SourceCacheLookups.WithLabelValues(c.Name(), "error").Inc()
		logger.Error.Printf("Cache read failed for %s: %v", c.key, err)
	default:
		var rows [][]string
		if err := json.Unmarshal(data, &rows); err == nil {
			metrics.SourceCacheLookups.WithLabelValues(c.Name(), "hit").Inc()
			logger.Debug.Printf("Cache hit for %s", c.key)
			return rows, nil
		}
		metrics.SourceCacheLookups.WithLabelValues(c.Name(), "error").Inc()
		logger.Error.Printf("Dropping undecodable cache entry %s", c.key)
	}

	return c.Refresh(ctx)
}

// Refresh fetches from the wrapped source and overwrites the cached rows.
func (c *CachedSource) Refresh(ctx context.Context) ([][]string, error) {
	rows, err := c.inner.Rows(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rows for %s: %w", c.Name(), err)
	}
	if err := c.redis.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		logger.Error.Printf("Cache write failed for %s: %v", c.key, err)
	}

	return rows, nil
}
