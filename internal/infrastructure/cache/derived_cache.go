package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
)

// cachedDerivedRepository is a read-through Redis layer in front of the
// derived store. Derived rows are immutable once written, so a cached row can
// never go stale; a cache miss or redis failure always falls back to the
// database. List reads bypass the cache.
type cachedDerivedRepository struct {
	inner  repositories.DerivedRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedDerivedRepository wraps a derived repository with a Redis
// read-through cache keyed by the canonical cache-key string.
func NewCachedDerivedRepository(inner repositories.DerivedRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) repositories.DerivedRepository {
	return &cachedDerivedRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedDerivedRepository) cacheKey(key entities.CacheKey) string {
	return "analysis:" + key.String()
}

// FindByKey consults Redis first and falls through to the database
func (r *cachedDerivedRepository) FindByKey(ctx context.Context, key entities.CacheKey) (*entities.MeetingAnalysis, error) {
	raw, err := r.client.Get(ctx, r.cacheKey(key)).Bytes()
	if err == nil {
		var analysis entities.MeetingAnalysis
		if jsonErr := json.Unmarshal(raw, &analysis); jsonErr == nil {
			return &analysis, nil
		}
		// Corrupt cache entry: drop it and fall through to the database.
		r.client.Del(ctx, r.cacheKey(key))
	} else if err != redis.Nil && r.logger != nil {
		r.logger.Warn("redis read failed, falling back to database",
			zap.String("cache_key", key.String()),
			zap.Error(err),
		)
	}

	analysis, err := r.inner.FindByKey(ctx, key)
	if err != nil || analysis == nil {
		return analysis, err
	}

	r.populate(ctx, analysis)
	return analysis, nil
}

// Insert delegates to the database and populates the cache on success
func (r *cachedDerivedRepository) Insert(ctx context.Context, analysis *entities.MeetingAnalysis) error {
	if err := r.inner.Insert(ctx, analysis); err != nil {
		return err
	}
	r.populate(ctx, analysis)
	return nil
}

// ListByContact always reads the database
func (r *cachedDerivedRepository) ListByContact(ctx context.Context, contactID string) ([]*entities.MeetingAnalysis, error) {
	return r.inner.ListByContact(ctx, contactID)
}

func (r *cachedDerivedRepository) populate(ctx context.Context, analysis *entities.MeetingAnalysis) {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.cacheKey(analysis.CacheKey()), raw, r.ttl).Err(); err != nil && r.logger != nil {
		r.logger.Warn("redis write failed",
			zap.String("cache_key", analysis.CacheKey().String()),
			zap.Error(err),
		)
	}
}
