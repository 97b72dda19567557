package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

// RedisClient is the shared Redis connection, closed on injector shutdown.
type RedisClient struct {
	*redis.Client
}

// Shutdown closes the client.
func (c *RedisClient) Shutdown() error {
	return c.Close()
}

// RedisPackage provides the shared Redis client. Callers must check
// Options.RedisEnabled before invoking it.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*RedisClient, error) {
		opts := do.MustInvoke[*Options](i)

		return &RedisClient{Client: redis.NewClient(&redis.Options{
			Addr: opts.RedisAddr,
		})}, nil
	})
}
