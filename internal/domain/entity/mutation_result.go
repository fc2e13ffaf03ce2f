package entity

import (
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// FailureReason explains why a balance mutation was rejected
type FailureReason string

// Failure reasons
const (
	ReasonNone              FailureReason = ""
	ReasonInsufficientFunds FailureReason = "INSUFFICIENT_FUNDS"
	ReasonNotFound          FailureReason = "NOT_FOUND"
)

// MutationResult is the business outcome of a debit or credit.
// Rejections are values, not errors; storage faults travel separately as errors.
type MutationResult struct {
	OK         bool          `json:"ok"`
	NewBalance int64         `json:"newBalance"`
	Reason     FailureReason `json:"reason,omitempty"`
}

// Succeeded returns an accepted result carrying the new balance
func Succeeded(newBalance int64) MutationResult {
	return MutationResult{OK: true, NewBalance: newBalance}
}

// Rejected returns a result refused for the given reason
func Rejected(reason FailureReason) MutationResult {
	return MutationResult{OK: false, Reason: reason}
}

// Err converts a rejection into the matching sentinel error, or nil when OK
func (r MutationResult) Err() error {
	if r.OK {
		return nil
	}
	switch r.Reason {
	case ReasonInsufficientFunds:
		return errs.ErrInsufficientCredits
	case ReasonNotFound:
		return errs.ErrAccountNotFound
	default:
		return errs.ErrInternalServer
	}
}
