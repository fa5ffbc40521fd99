package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyPrefix = "idempotency:order"
	pendingMarker        = "pending"
)

// IdempotencyRecord is what an Idempotency-Key currently points at.
// Pending is true while the request that reserved the key is still running.
type IdempotencyRecord struct {
	OrderID int
	Pending bool
}

// IdempotencyStore maps client-supplied Idempotency-Key values to created order ids.
// Key format: "idempotency:order:{key}"
type IdempotencyStore struct {
	client *RedisClient
	ttl    time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore whose entries expire after ttl.
func NewIdempotencyStore(r *RedisClient, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: r, ttl: ttl}
}

// Reserve claims key for the calling request. It returns false when the key
// is already reserved or completed.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.Client().SetNX(ctx, s.key(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

// Lookup returns the record stored under key.
// Returns redis.Nil error when the key does not exist or has expired.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (IdempotencyRecord, error) {
	val, err := s.client.Client().Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return IdempotencyRecord{}, redis.Nil
		}
		return IdempotencyRecord{}, fmt.Errorf("idempotency lookup: %w", err)
	}
	if val == pendingMarker {
		return IdempotencyRecord{Pending: true}, nil
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return IdempotencyRecord{}, fmt.Errorf("idempotency parse order id: %w", err)
	}
	return IdempotencyRecord{OrderID: id}, nil
}

// Complete records orderID under key, replacing the pending marker and
// restarting the TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, orderID int) error {
	if err := s.client.Client().Set(ctx, s.key(key), strconv.Itoa(orderID), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops a reservation so the client may retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

// key builds the Redis key: "idempotency:order:{key}"
func (s *IdempotencyStore) key(k string) string {
	return fmt.Sprintf("%s:%s", idempotencyKeyPrefix, k)
}
