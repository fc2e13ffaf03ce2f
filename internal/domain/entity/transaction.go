package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	tport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// TransactionKind categorizes a ledger row. The set is closed.
type TransactionKind string

// Transaction kinds
const (
	KindInitial  TransactionKind = "INITIAL"
	KindDebit    TransactionKind = "DEBIT"
	KindPurchase TransactionKind = "PURCHASE"
	KindBonus    TransactionKind = "BONUS"
	KindRefund   TransactionKind = "REFUND"
)

// MaxDescriptionLength bounds the free-text annotation stored with a row
const MaxDescriptionLength = 500

// Kinds returns every valid transaction kind
func Kinds() []TransactionKind {
	return []TransactionKind{KindInitial, KindDebit, KindPurchase, KindBonus, KindRefund}
}

// GrantKinds returns the kinds a caller may use when granting credits
func GrantKinds() []TransactionKind {
	return []TransactionKind{KindPurchase, KindBonus, KindRefund}
}

// ParseTransactionKind converts a raw string into a kind, rejecting anything outside the set
func ParseTransactionKind(raw string) (TransactionKind, error) {
	kind := TransactionKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidKind, raw)
	}
	return kind, nil
}

// IsValid reports whether k is one of the known kinds
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindInitial, KindDebit, KindPurchase, KindBonus, KindRefund:
		return true
	}
	return false
}

// IsGrant reports whether k may be passed to a grant
func (k TransactionKind) IsGrant() bool {
	return k == KindPurchase || k == KindBonus || k == KindRefund
}

// IsCredit reports whether rows of this kind carry a positive amount
func (k TransactionKind) IsCredit() bool {
	return k.IsValid() && k != KindDebit
}

// String implements fmt.Stringer
func (k TransactionKind) String() string {
	return string(k)
}

// Transaction is one immutable row of the credit ledger
type Transaction struct {
	ID           uint64          // Strictly increasing in insertion order
	AccountID    string          // Owner of the balance that changed
	Amount       int64           // Signed delta: positive credits, negative debits
	BalanceAfter int64           // Balance right after this change was applied
	Kind         TransactionKind // Category of the change
	Description  string          // Optional annotation
	CreatedAt    time.Time       // When the row was written
}

// NewTransaction builds a ledger row from a signed amount, enforcing that the sign matches the kind
func NewTransaction(
	accountID string,
	kind TransactionKind,
	amount int64,
	balanceAfter int64,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidKind, kind)
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: ledger rows cannot carry a zero amount", errs.ErrInvalidAmount)
	}
	if kind == KindDebit && amount > 0 {
		return nil, fmt.Errorf("%w: debit rows must be negative", errs.ErrInvalidAmount)
	}
	if kind.IsCredit() && amount < 0 {
		return nil, fmt.Errorf("%w: %s rows must be positive", errs.ErrInvalidAmount, kind)
	}
	if balanceAfter < 0 {
		return nil, fmt.Errorf("%w: balance after change cannot be negative", errs.ErrInvalidAmount)
	}

	description = strings.TrimSpace(description)
	// Cut on a rune boundary; the limit counts characters, not bytes
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		description = string([]rune(description)[:MaxDescriptionLength])
	}

	return &Transaction{
		AccountID:    accountID,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Kind:         kind,
		Description:  description,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NewDebitTransaction records consumption of amount credits (amount is positive)
func NewDebitTransaction(accountID string, amount, balanceAfter int64, description string, timeProvider tport.TimeProvider) (*Transaction, error) {
	return NewTransaction(accountID, KindDebit, -amount, balanceAfter, description, timeProvider)
}

// NewCreditTransaction records an increase of amount credits under a credit kind
func NewCreditTransaction(accountID string, kind TransactionKind, amount, balanceAfter int64, description string, timeProvider tport.TimeProvider) (*Transaction, error) {
	if kind == KindDebit {
		return nil, fmt.Errorf("%w: DEBIT is not a credit kind", errs.ErrInvalidKind)
	}
	return NewTransaction(accountID, kind, amount, balanceAfter, description, timeProvider)
}

// IsDebit reports whether the row decreased the balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// Magnitude returns the absolute amount
func (t *Transaction) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// BalanceBefore returns the balance the change was applied to
func (t *Transaction) BalanceBefore() int64 {
	return t.BalanceAfter - t.Amount
}
