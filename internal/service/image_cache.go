package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"medread/internal/cache"
	"medread/internal/domain"
	"medread/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultImageStatsTTL = 10 * time.Minute

// imageViewCache caches per-user derived views of the image set (stats, categories).
// A nil cache turns every call into a straight load. Cache failures never fail the request.
type imageViewCache struct {
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group

	// generations counts invalidations per user; a fetch that started under an
	// older generation must not leave its result in the cache.
	mu          sync.Mutex
	generations map[string]uint64
}

func newImageViewCache(c domain.Cache, ttl time.Duration) *imageViewCache {
	if ttl <= 0 {
		ttl = defaultImageStatsTTL
	}
	return &imageViewCache{cache: c, ttl: ttl, generations: make(map[string]uint64)}
}

func (c *imageViewCache) generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

func (c *imageViewCache) bump(userID string) {
	c.mu.Lock()
	c.generations[userID]++
	c.mu.Unlock()
}

// load returns the cached JSON at key decoded into out, or runs fetch once per key across
// concurrent callers and stores its result. The shared fetch is detached from any single
// caller's cancellation; each caller still stops waiting when its own ctx is done.
func (c *imageViewCache) load(ctx context.Context, userID, key string, out interface{}, fetch func(ctx context.Context) (interface{}, error)) error {
	if c.cache != nil {
		raw, err := c.cache.Get(ctx, key)
		if err == nil {
			if errDecode := json.Unmarshal([]byte(raw), out); errDecode == nil {
				return nil
			}
			logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Image cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		gen := c.generation(userID)
		value, fetchErr := fetch(fetchCtx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		encoded, errEncode := json.Marshal(value)
		if errEncode != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, errEncode)
		}
		c.store(fetchCtx, userID, key, gen, encoded)
		return encoded, nil
	})

	var res interface{}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return r.Err
		}
		res = r.Val
	}

	encoded, ok := res.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type from singleflight for %s: %T", key, res)
	}
	return json.Unmarshal(encoded, out)
}

// store writes encoded unless userID was invalidated after gen was read. An invalidation
// racing the write itself is caught by the re-check, which removes the entry again.
func (c *imageViewCache) store(ctx context.Context, userID, key string, gen uint64, encoded []byte) {
	if c.cache == nil || c.generation(userID) != gen {
		return
	}
	if err := c.cache.Set(ctx, key, string(encoded), c.ttl); err != nil {
		logger.Get().Warn("Image cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if c.generation(userID) != gen {
		if err := c.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to drop stale image cache entry", zap.String("key", key), zap.Error(err))
		}
	}
}

// invalidate drops every derived view of userID's images. Loads already in flight keep
// running for their waiters but no longer share with new callers or write to the cache.
func (c *imageViewCache) invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	c.bump(userID)
	keys := cache.ImageKeys(userID)
	for _, key := range keys {
		c.group.Forget(key)
	}
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Image cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}
