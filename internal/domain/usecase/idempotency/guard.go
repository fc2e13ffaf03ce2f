package idempotency

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// DefaultTTL is how long a spend outcome stays replayable
const DefaultTTL = 24 * time.Hour

// Guard runs keyed spend requests at most once and replays their stored outcome on retry
type Guard struct {
	ledger       usecase.LedgerUseCase
	store        persistence.IdempotencyStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	ttl          time.Duration
	newToken     func() string
}

var _ usecase.SpendGuard = (*Guard)(nil)

// NewGuard creates a guard in front of the ledger's Spend.
// A nil store turns the guard into a pass-through.
func NewGuard(
	ledger usecase.LedgerUseCase,
	store persistence.IdempotencyStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	ttl time.Duration,
) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{
		ledger:       ledger,
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
		ttl:          ttl,
		newToken:     uuid.NewString,
	}
}

// Enabled reports whether keyed requests are deduplicated
func (g *Guard) Enabled() bool {
	return g.store != nil
}

// Spend debits through the ledger once per idempotency key.
// Requests without a key, or with the guard disabled, go straight to the ledger.
func (g *Guard) Spend(ctx context.Context, accountID, idempotencyKey string, amount int64, description string) (entity.MutationResult, bool, error) {
	if g.store == nil || idempotencyKey == "" {
		result, err := g.ledger.Spend(ctx, accountID, amount, description)
		return result, false, err
	}
	if err := entity.ValidateIdempotencyKey(idempotencyKey); err != nil {
		return entity.MutationResult{}, false, err
	}
	if err := entity.ValidateAccountID(accountID); err != nil {
		return entity.MutationResult{}, false, err
	}

	key := storeKey(accountID, idempotencyKey)
	fingerprint := entity.SpendFingerprint(amount, strings.TrimSpace(description))
	pending := entity.NewPendingIdempotencyRecord(g.newToken(), fingerprint, g.timeProvider)

	reserved, err := g.store.Reserve(ctx, key, pending, g.ttl)
	if err != nil {
		g.logger.Error("Failed to reserve idempotency key", map[string]any{
			"account_id":      accountID,
			"idempotency_key": idempotencyKey,
			"error":           err.Error(),
		})
		return entity.MutationResult{}, false, errs.NewStorageError("idempotency.reserve", accountID, err)
	}
	if !reserved {
		return g.replay(ctx, accountID, idempotencyKey, key, fingerprint)
	}

	result, err := g.ledger.Spend(ctx, accountID, amount, description)
	if err != nil {
		// the request never completed; free the key so the client can retry
		if releaseErr := g.store.Release(context.WithoutCancel(ctx), key, pending.Token); releaseErr != nil {
			g.logger.Warn("Failed to release idempotency key", map[string]any{
				"account_id":      accountID,
				"idempotency_key": idempotencyKey,
				"error":           releaseErr.Error(),
			})
		}
		return result, false, err
	}

	pending.Complete(result)
	if err := g.store.Complete(context.WithoutCancel(ctx), key, pending, g.ttl); err != nil {
		// the debit is committed; a retry will see the key as in progress until it expires
		g.logger.Error("Failed to store idempotent spend result", map[string]any{
			"account_id":      accountID,
			"idempotency_key": idempotencyKey,
			"error":           err.Error(),
		})
	}

	return result, false, nil
}

func (g *Guard) replay(ctx context.Context, accountID, idempotencyKey, key, fingerprint string) (entity.MutationResult, bool, error) {
	existing, found, err := g.store.Get(ctx, key)
	if err != nil {
		return entity.MutationResult{}, false, errs.NewStorageError("idempotency.get", accountID, err)
	}
	if !found {
		// released or expired since the reservation attempt
		return entity.MutationResult{}, false, errs.ErrIdempotencyInProgress
	}
	if existing.Fingerprint != fingerprint {
		g.logger.Warn("Idempotency key reused with a different request", map[string]any{
			"account_id":      accountID,
			"idempotency_key": idempotencyKey,
		})
		return entity.MutationResult{}, false, errs.ErrIdempotencyKeyMismatch
	}
	if !existing.IsCompleted() {
		return entity.MutationResult{}, false, errs.ErrIdempotencyInProgress
	}

	g.logger.Info("Replaying idempotent spend", map[string]any{
		"account_id":      accountID,
		"idempotency_key": idempotencyKey,
		"ok":              existing.Result.OK,
		"new_balance":     existing.Result.NewBalance,
	})
	return *existing.Result, true, nil
}

// storeKey length-prefixes the account id so ids and keys containing ':' cannot collide
func storeKey(accountID, idempotencyKey string) string {
	return "spend:" + strconv.Itoa(len(accountID)) + ":" + accountID + ":" + idempotencyKey
}
