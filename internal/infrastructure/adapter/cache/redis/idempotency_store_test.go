package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

var createdAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, ""), s
}

func pendingRecord(token string) *entity.IdempotencyRecord {
	return &entity.IdempotencyRecord{
		Token:       token,
		Fingerprint: entity.SpendFingerprint(3, "Prompt generation"),
		Status:      entity.IdempotencyPending,
		CreatedAt:   createdAt,
	}
}

func TestIdempotencyStore_ReserveAndGet(t *testing.T) {
	store, s := newTestStore(t)
	ctx := context.Background()
	key := "spend:user-1:key-1"

	record, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, record)

	reserved, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.True(t, s.Exists("idem:"+key))

	reserved, err = store.Reserve(ctx, key, pendingRecord("token-2"), time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved, "second reservation must lose")

	record, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "token-1", record.Token)
	assert.Equal(t, entity.IdempotencyPending, record.Status)
	assert.True(t, createdAt.Equal(record.CreatedAt))
}

func TestIdempotencyStore_Complete(t *testing.T) {
	ctx := context.Background()
	key := "spend:user-1:key-1"

	t.Run("matching token stores the result", func(t *testing.T) {
		store, s := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Minute)
		require.NoError(t, err)

		completed := pendingRecord("token-1")
		completed.Complete(entity.Succeeded(7))
		require.NoError(t, store.Complete(ctx, key, completed, time.Hour))

		record, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, record.IsCompleted())
		assert.Equal(t, entity.Succeeded(7), *record.Result)
		assert.Equal(t, time.Hour, s.TTL("idem:"+key))
	})

	t.Run("rejections are stored too", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Minute)
		require.NoError(t, err)

		completed := pendingRecord("token-1")
		completed.Complete(entity.Rejected(entity.ReasonInsufficientFunds))
		require.NoError(t, store.Complete(ctx, key, completed, time.Hour))

		record, _, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, entity.ReasonInsufficientFunds, record.Result.Reason)
	})

	t.Run("foreign token leaves the record alone", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Minute)
		require.NoError(t, err)

		stale := pendingRecord("token-stale")
		stale.Complete(entity.Succeeded(1))
		require.NoError(t, store.Complete(ctx, key, stale, time.Hour))

		record, _, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "token-1", record.Token)
		assert.False(t, record.IsCompleted())
	})

	t.Run("expired reservation is not resurrected", func(t *testing.T) {
		store, s := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Second)
		require.NoError(t, err)
		s.FastForward(2 * time.Second)

		completed := pendingRecord("token-1")
		completed.Complete(entity.Succeeded(7))
		require.NoError(t, store.Complete(ctx, key, completed, time.Hour))

		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestIdempotencyStore_Release(t *testing.T) {
	ctx := context.Background()
	key := "spend:user-1:key-1"

	t.Run("owner releases", func(t *testing.T) {
		store, s := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Hour)
		require.NoError(t, err)

		require.NoError(t, store.Release(ctx, key, "token-1"))

		assert.False(t, s.Exists("idem:"+key))
		reserved, err := store.Reserve(ctx, key, pendingRecord("token-2"), time.Hour)
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("other token cannot release", func(t *testing.T) {
		store, s := newTestStore(t)
		_, err := store.Reserve(ctx, key, pendingRecord("token-1"), time.Hour)
		require.NoError(t, err)

		require.NoError(t, store.Release(ctx, key, "token-2"))

		assert.True(t, s.Exists("idem:"+key))
	})

	t.Run("missing key is fine", func(t *testing.T) {
		store, _ := newTestStore(t)
		assert.NoError(t, store.Release(ctx, key, "token-1"))
	})
}

func TestIdempotencyStore_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt payload", func(t *testing.T) {
		store, s := newTestStore(t)
		require.NoError(t, s.Set("idem:spend:user-1:bad", "not-json"))

		_, _, err := store.Get(ctx, "spend:user-1:bad")
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("server down", func(t *testing.T) {
		store, s := newTestStore(t)
		s.Close()

		_, err := store.Reserve(ctx, "spend:user-1:key", pendingRecord("token-1"), time.Hour)
		assert.ErrorContains(t, err, "reserve")
	})
}

func TestNewIdempotencyStore_Prefix(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewIdempotencyStore(client, "ledger:idem:")

	_, err := store.Reserve(context.Background(), "spend:a:k", pendingRecord("t"), time.Hour)
	require.NoError(t, err)
	assert.True(t, s.Exists("ledger:idem:spend:a:k"))
}

func TestNewClient(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		s := miniredis.RunT(t)

		client, err := NewClient(context.Background(), config.RedisConfig{Addr: s.Addr()}, logger.NewNoopLogger())

		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})

	t.Run("unreachable", func(t *testing.T) {
		s := miniredis.RunT(t)
		addr := s.Addr()
		s.Close()

		_, err := NewClient(context.Background(), config.RedisConfig{Addr: addr}, logger.NewNoopLogger())

		assert.ErrorContains(t, err, "pinging redis")
	})
}
