package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// MaxAccountIDLength matches the width of the account_id column
const MaxAccountIDLength = 255

// Account is the balance row of a billing identity.
// The identity itself is owned by an external auth system; ID is opaque here.
type Account struct {
	ID            string    // Opaque account identifier from the identity provider
	balance       int64     // Spendable credits, never negative (private)
	TotalConsumed int64     // Credits ever debited, only grows
	CreatedAt     time.Time // When the balance row was created
	LastUpdated   time.Time // When the balance was last mutated
}

// NewAccount creates an account with its starting grant
func NewAccount(id string, startingBalance int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if err := ValidateAccountID(id); err != nil {
		return nil, err
	}
	if startingBalance < 0 {
		return nil, fmt.Errorf("%w: starting balance cannot be negative", errs.ErrInvalidAmount)
	}

	now := timeProvider.Now()
	return &Account{
		ID:            id,
		balance:       startingBalance,
		TotalConsumed: 0,
		CreatedAt:     now,
		LastUpdated:   now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state (for repositories)
func RestoreAccount(id string, balance, totalConsumed int64, createdAt, lastUpdated time.Time) *Account {
	return &Account{
		ID:            id,
		balance:       balance,
		TotalConsumed: totalConsumed,
		CreatedAt:     createdAt,
		LastUpdated:   lastUpdated,
	}
}

// Balance returns the current spendable credits
func (a *Account) Balance() int64 {
	return a.balance
}

// CanCover reports whether the balance is at least amount
func (a *Account) CanCover(amount int64) bool {
	return a.balance >= amount
}

// IsLowBalance reports whether the balance is at or below threshold
func (a *Account) IsLowBalance(threshold int64) bool {
	return a.balance <= threshold
}

// ValidateAccountID checks that an account ID is usable as a primary key
func ValidateAccountID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidAccountID)
	}
	if len(id) > MaxAccountIDLength {
		return fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidAccountID, MaxAccountIDLength)
	}
	if strings.TrimSpace(id) != id {
		return fmt.Errorf("%w: leading or trailing whitespace", errs.ErrInvalidAccountID)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: contains control characters", errs.ErrInvalidAccountID)
		}
	}
	return nil
}
