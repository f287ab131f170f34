// Package redis backs the blob-store boundary with a Redis instance, for
// installs that want bookings to survive the device (or share a host-local
// Redis across app restarts).
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ns          = "nxtbus:v1"
	dialTimeout = 3 * time.Second
)

func keyBlob(name string) string {
	return fmt.Sprintf("%s:blob:%s", ns, name)
}

// Store implements the kv.Store interface over Redis. Blobs are durable:
// they are written without a TTL.
type Store struct {
	rdb *redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Open dials Redis and verifies the connection before handing back a
// store. The store owns the client; release it with Close.
func Open(ctx context.Context, opts Options) (*Store, error) {
	const op = "repository.redis.Open"

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{rdb: rdb}, nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "repository.redis.Get"

	val, err := s.rdb.Get(ctx, keyBlob(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

func (s *Store) Put(ctx context.Context, key string, val []byte) error {
	const op = "repository.redis.Put"

	if err := s.rdb.Set(ctx, keyBlob(key), val, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const op = "repository.redis.Delete"

	if err := s.rdb.Del(ctx, keyBlob(key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
