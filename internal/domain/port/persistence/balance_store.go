package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// BalanceStore owns the one balance row per account.
// It is the only component allowed to change a balance.
type BalanceStore interface {
	// Initialize creates the balance row with startingBalance if none exists.
	// created is true for exactly one caller per account, even under concurrency;
	// every other caller gets the existing row back with created=false.
	//
	// Possible errors:
	// - ErrInvalidAccountID: If the account ID is not usable
	// - ErrInvalidAmount: If startingBalance is negative
	// - ErrStorageFailure: If the database fails
	Initialize(ctx context.Context, accountID string, startingBalance int64) (account *entity.Account, created bool, err error)

	// Get reads the balance row. A missing row is found=false with a nil error.
	//
	// Possible errors:
	// - ErrStorageFailure: If the database fails
	Get(ctx context.Context, accountID string) (account *entity.Account, found bool, err error)

	// DebitIfSufficient subtracts amount in a single conditional statement, only if the balance covers it.
	// Rejections (INSUFFICIENT_FUNDS, NOT_FOUND) are results, not errors.
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is not positive
	// - ErrStorageFailure: If the database fails
	DebitIfSufficient(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error)

	// Credit adds amount unconditionally. A missing row is a NOT_FOUND result.
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is not positive
	// - ErrAmountOverflow: If the new balance would not fit
	// - ErrStorageFailure: If the database fails
	Credit(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error)
}
