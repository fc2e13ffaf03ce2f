package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// LedgerUseCase is the public entry point of the credit ledger
type LedgerUseCase interface {
	// EnsureAccount creates the account with its starting grant on first use.
	// created is true only for the call that wrote the INITIAL row.
	EnsureAccount(ctx context.Context, accountID string) (account *entity.Account, created bool, err error)

	// GetBalance reads an account without creating it
	GetBalance(ctx context.Context, accountID string) (account *entity.Account, found bool, err error)

	// HasSufficient reports whether the account can cover required credits.
	// A missing account is simply false.
	HasSufficient(ctx context.Context, accountID string, required int64) (bool, error)

	// Spend debits amount and records a DEBIT row atomically
	Spend(ctx context.Context, accountID string, amount int64, description string) (entity.MutationResult, error)

	// Grant credits amount under a PURCHASE, BONUS or REFUND kind and records the row atomically
	Grant(ctx context.Context, accountID string, amount int64, kind entity.TransactionKind, description string) (entity.MutationResult, error)

	// ListTransactions returns a page of the account's history and the cursor of the next page
	ListTransactions(ctx context.Context, accountID string, opts entity.ListOptions) (*entity.TransactionPage, error)

	// GetStats cross-checks the ledger against the balance row
	GetStats(ctx context.Context, accountID string) (*entity.CreditStats, error)

	// IsLowBalance reports whether the account should be warned about running out
	IsLowBalance(account *entity.Account) bool
}

// SpendGuard deduplicates spend requests that carry an idempotency key
type SpendGuard interface {
	// Spend runs the debit at most once per key.
	// replayed is true when the result came from an earlier request with the same key.
	Spend(ctx context.Context, accountID, idempotencyKey string, amount int64, description string) (result entity.MutationResult, replayed bool, err error)
}
