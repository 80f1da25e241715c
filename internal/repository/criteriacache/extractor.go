package criteriacache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/miamibe/food-eats/internal/db"
	"github.com/miamibe/food-eats/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "criteria_cache:"

// store is the consumer interface for the criteria cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedExtractor caches extracted criteria in a key-value store. Identical
// queries (case-insensitive) reuse the stored criteria instead of calling
// the model again.
type CachedExtractor struct {
	inner      domain.Extractor
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Extractor,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedExtractor {
	return &CachedExtractor{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Extract returns cached criteria or calls the inner extractor. Cache
// failures degrade silently: the inner extractor is always reachable.
func (c *CachedExtractor) Extract(ctx context.Context, query string) (domain.Criteria, error) {
	key := c.cacheKey(query)

	if criteria, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return criteria, nil
	}

	c.incCache("miss")

	criteria, err := c.inner.Extract(ctx, query)
	if err != nil {
		return domain.Criteria{}, fmt.Errorf("extract criteria: %w", err)
	}

	c.putToCache(ctx, key, criteria)
	return criteria, nil
}

func (c *CachedExtractor) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedExtractor) cacheKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	h := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedExtractor) getFromCache(ctx context.Context, key string) (domain.Criteria, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached criteria", zap.String("key", key), zap.Error(err))
		}
		return domain.Criteria{}, false
	}
	if len(data) == 0 {
		return domain.Criteria{}, false
	}

	var criteria domain.Criteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		c.logger.Warn("Failed to parse cached criteria", zap.String("key", key), zap.Error(err))
		return domain.Criteria{}, false
	}

	return criteria, true
}

func (c *CachedExtractor) putToCache(ctx context.Context, key string, criteria domain.Criteria) {
	data, err := json.Marshal(criteria)
	if err != nil {
		c.logger.Warn("Failed to encode criteria for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache criteria", zap.String("key", key), zap.Error(err))
	}
}
