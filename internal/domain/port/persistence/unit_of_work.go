package persistence

import (
	"context"
)

// UnitOfWork coordinates a balance change and its ledger row inside one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetBalanceStore returns a balance store bound to the current transaction
	GetBalanceStore(ctx context.Context) BalanceStore

	// GetTransactionLedger returns a ledger bound to the current transaction
	GetTransactionLedger(ctx context.Context) TransactionLedger
}
