package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/link-shortener/internal/shortener"
	"go.uber.org/zap"
)

// RedisCacheRepository wraps a Repository with Redis caching for lookups.
// Links never change after insert, so a cached entry is always correct; the
// ttl only bounds how long idle entries occupy memory.
type RedisCacheRepository struct {
	store  shortener.Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCacheRepository creates a new Redis-cached repository decorator.
func NewRedisCacheRepository(
	store shortener.Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "link-cache:",
		ttl:    ttl,
		logger: logger,
	}
}

// Insert stores a link in the underlying store and updates the cache.
func (r *RedisCacheRepository) Insert(ctx context.Context, link shortener.Link) error {
	if err := r.store.Insert(ctx, link); err != nil {
		return err
	}

	// Write-through: only after the backing insert committed
	r.cacheLink(ctx, link)

	return nil
}

// Lookup retrieves a link by its short id, checking cache first.
// Misses are not cached.
func (r *RedisCacheRepository) Lookup(ctx context.Context, id shortener.ShortID) (shortener.Link, error) {
	url, err := r.client.Get(ctx, r.prefix+string(id)).Result()
	if err == nil {
		return shortener.Link{ShortID: id, OriginalURL: url}, nil
	}

	if !errors.Is(err, redis.Nil) {
		r.logger.Warn("link cache read failed", zap.String("short_id", string(id)), zap.Error(err))
	}

	link, err := r.store.Lookup(ctx, id)
	if err != nil {
		return shortener.Link{}, err
	}

	r.cacheLink(ctx, link)

	return link, nil
}

func (r *RedisCacheRepository) cacheLink(ctx context.Context, link shortener.Link) {
	err := r.client.Set(ctx, r.prefix+string(link.ShortID), link.OriginalURL, r.ttl).Err()
	if err != nil {
		r.logger.Warn("link cache write failed", zap.String("short_id", string(link.ShortID)), zap.Error(err))
	}
}

// Compile-time check.
var _ shortener.Repository = (*RedisCacheRepository)(nil)
