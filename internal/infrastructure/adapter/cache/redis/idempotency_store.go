package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// DefaultKeyPrefix namespaces idempotency records in a shared Redis
const DefaultKeyPrefix = "idem:"

// maxWatchRetries bounds optimistic retries when a key changes under WATCH
const maxWatchRetries = 3

// IdempotencyStore implements persistence.IdempotencyStore using Redis
type IdempotencyStore struct {
	client goredis.UniversalClient
	prefix string
}

var _ persistence.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates a new Redis-backed idempotency store
func NewIdempotencyStore(client goredis.UniversalClient, prefix string) *IdempotencyStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &IdempotencyStore{
		client: client,
		prefix: prefix,
	}
}

// Reserve writes the pending record with SET NX
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, pending *entity.IdempotencyRecord, ttl time.Duration) (bool, error) {
	payload, err := json.Marshal(pending)
	if err != nil {
		return false, fmt.Errorf("redis idempotency encode: %w", err)
	}

	reserved, err := s.client.SetNX(ctx, s.prefix+key, payload, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency reserve: %w", err)
	}
	return reserved, nil
}

// Get loads the record under key; a missing key is not an error
func (s *IdempotencyStore) Get(ctx context.Context, key string) (*entity.IdempotencyRecord, bool, error) {
	record, err := s.get(ctx, s.client, s.prefix+key)
	if err != nil {
		return nil, false, err
	}
	return record, record != nil, nil
}

// Complete swaps the pending record for the completed one if the reservation token still matches
func (s *IdempotencyStore) Complete(ctx context.Context, key string, record *entity.IdempotencyRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("redis idempotency encode: %w", err)
	}

	fullKey := s.prefix + key
	return s.compareAndSwap(ctx, fullKey, record.Token, func(pipe goredis.Pipeliner) {
		pipe.Set(ctx, fullKey, payload, ttl)
	})
}

// Release deletes the reservation if it is still held by token
func (s *IdempotencyStore) Release(ctx context.Context, key string, token string) error {
	fullKey := s.prefix + key
	return s.compareAndSwap(ctx, fullKey, token, func(pipe goredis.Pipeliner) {
		pipe.Del(ctx, fullKey)
	})
}

// compareAndSwap runs write inside MULTI only while the stored token equals token
func (s *IdempotencyStore) compareAndSwap(ctx context.Context, fullKey, token string, write func(pipe goredis.Pipeliner)) error {
	txf := func(tx *goredis.Tx) error {
		current, err := s.get(ctx, tx, fullKey)
		if err != nil {
			return err
		}
		if current == nil || current.Token != token {
			// Expired, released, or taken over by another reservation
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			write(pipe)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := s.client.Watch(ctx, txf, fullKey)
		if err == nil {
			return nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return fmt.Errorf("redis idempotency update: %w", err)
		}
	}
	return fmt.Errorf("redis idempotency update: %w", goredis.TxFailedErr)
}

func (s *IdempotencyStore) get(ctx context.Context, client goredis.Cmdable, fullKey string) (*entity.IdempotencyRecord, error) {
	raw, err := client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}

	var record entity.IdempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("redis idempotency decode: %w", err)
	}
	return &record, nil
}
