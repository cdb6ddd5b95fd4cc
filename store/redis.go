package store

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis stores every collection as a plain string value. GET/SET of whole
// JSON blobs keeps the last-write-wins replace semantics the rest of the
// system assumes.
type Redis struct {
	Conn *redis.Client
}

// NewRedis connects using REDIS_URL (host:port) and REDIS_PASSWORD from the
// environment, defaulting to a local instance.
func NewRedis() *Redis {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"), // empty if no password
		DB:       0,
	})

	return &Redis{Conn: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.Conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.Conn.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.Conn.Del(ctx, key).Err()
}
