package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/redis"
)

// CacheService caches rendered list responses per resource kind. Any write
// through a resource invalidates every cached listing of that kind.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService returns nil when redis is disabled; callers treat a nil
// service as a pass-through.
func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	if client == nil {
		return nil
	}
	return &CacheService{client: client, ttl: ttl}
}

// ListingKey derives a stable cache key from the resource kind and the raw
// query string.
func (s *CacheService) ListingKey(kind, rawQuery string) string {
	sum := md5.Sum([]byte(rawQuery))
	return fmt.Sprintf("%s%s:%x", constants.CacheKeyListing, kind, sum)
}

// GetListing returns the cached response body, or nil on a miss.
func (s *CacheService) GetListing(ctx context.Context, key string) []byte {
	if s == nil {
		return nil
	}
	data, err := s.client.Get(ctx, key)
	if err != nil {
		logger.GetLogger().Warn("Listing cache read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}
	return data
}

// SetListing stores a rendered response body. Failures are logged and
// swallowed; the cache is an optimization, never a dependency.
func (s *CacheService) SetListing(ctx context.Context, key string, body []byte) {
	if s == nil {
		return
	}
	if err := s.client.Set(ctx, key, body, s.ttl); err != nil {
		logger.GetLogger().Warn("Listing cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// InvalidateKind drops every cached listing of the given resource kind.
func (s *CacheService) InvalidateKind(ctx context.Context, kind string) {
	if s == nil {
		return
	}
	pattern := fmt.Sprintf("%s%s:*", constants.CacheKeyListing, kind)
	if err := s.client.DeleteByPattern(ctx, pattern); err != nil {
		logger.GetLogger().Warn("Listing cache invalidation failed",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
}
