package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// IdempotencyStore remembers the outcome of requests that carried an idempotency key
type IdempotencyStore interface {
	// Reserve stores a pending record under key only if the key is unused.
	// reserved is false when another request already holds the key.
	Reserve(ctx context.Context, key string, pending *entity.IdempotencyRecord, ttl time.Duration) (reserved bool, err error)

	// Get loads the record under key; found is false once it expired or was released
	Get(ctx context.Context, key string) (record *entity.IdempotencyRecord, found bool, err error)

	// Complete replaces the pending record with its final outcome.
	// It is a no-op if the key no longer holds a reservation with the same token.
	Complete(ctx context.Context, key string, record *entity.IdempotencyRecord, ttl time.Duration) error

	// Release drops the reservation identified by token so a retry can run
	Release(ctx context.Context, key string, token string) error
}
