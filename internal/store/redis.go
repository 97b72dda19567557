package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/link-shortener/internal/shortener"
)

// RedisStore is a Redis implementation of shortener.Repository.
// Durability depends on the server's persistence settings (AOF/RDB).
type RedisStore struct {
	client *redis.Client
	prefix string // "link:" for short id -> url (string keys)
}

// NewRedisStore creates a new Redis-backed link store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "link:",
	}
}

func (r *RedisStore) Insert(ctx context.Context, link shortener.Link) error {
	// SETNX gives the same first-writer-wins guarantee as a primary key.
	ok, err := r.client.SetNX(ctx, r.prefix+string(link.ShortID), link.OriginalURL, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return shortener.ErrDuplicateKey
	}

	return nil
}

func (r *RedisStore) Lookup(ctx context.Context, id shortener.ShortID) (shortener.Link, error) {
	url, err := r.client.Get(ctx, r.prefix+string(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return shortener.Link{}, shortener.ErrNotFound
		}

		return shortener.Link{}, err
	}

	return shortener.Link{ShortID: id, OriginalURL: url}, nil
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ shortener.Repository = (*RedisStore)(nil)
