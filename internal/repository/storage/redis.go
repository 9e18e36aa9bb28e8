package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage holds the shared redis connection the game registry runs on.
type RedisStorage struct {
	Connection *redis.Client
}

func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if that == nil || that.Connection == nil {
		return nil
	}

	return that.Connection.Close()
}
