package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// TransactionLedger is the append-only log of balance changes.
// Rows are never updated or deleted.
type TransactionLedger interface {
	// Append inserts one row and fills in its ID and CreatedAt
	//
	// Possible errors:
	// - ErrStorageFailure: If the database fails
	Append(ctx context.Context, transaction *entity.Transaction) error

	// List returns a bounded, ordered page of an account's rows
	//
	// Possible errors:
	// - ErrStorageFailure: If the database fails
	List(ctx context.Context, accountID string, opts entity.ListOptions) ([]*entity.Transaction, error)

	// Aggregate computes earned, used, net and count over all of an account's rows in one query
	//
	// Possible errors:
	// - ErrStorageFailure: If the database fails
	Aggregate(ctx context.Context, accountID string) (*entity.LedgerAggregate, error)
}
