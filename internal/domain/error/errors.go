package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidAccountID    = 4003
	CodeInvalidKind         = 4004
	CodeInvalidRequest      = 4005
	CodeAmountOverflow      = 4006
	CodeUnauthorized        = 4010
	CodeAccountNotFound     = 4040
	CodeIdempotencyConflict = 4090
	CodeIdempotencyMismatch = 4220
	CodeTooManyRequests     = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorageFailure = 5030
)

// Base error types
var (
	// ErrInsufficientCredits is returned when an account cannot cover a debit
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrAccountNotFound is returned when the account has no balance row yet
	ErrAccountNotFound = errors.New("account not found")

	// ErrStorageFailure is returned when the store is unreachable or a unit of work could not commit
	ErrStorageFailure = errors.New("storage failure")

	// ErrInvalidAmount is returned when a credit amount is not a positive integer
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrAmountOverflow is returned when the amount is too large to apply safely
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account ID is empty or malformed
	ErrInvalidAccountID = errors.New("invalid account ID")

	// ErrInvalidKind is returned when a transaction kind is outside the closed set
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when no authenticated account accompanies a request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNoActiveUnitOfWork is returned when commit or rollback is called outside a unit of work
	ErrNoActiveUnitOfWork = errors.New("no unit of work found in context")

	// ErrIdempotencyInProgress is returned while another request holds the same idempotency key
	ErrIdempotencyInProgress = errors.New("a request with this idempotency key is still in progress")

	// ErrIdempotencyKeyMismatch is returned when an idempotency key is reused for a different request
	ErrIdempotencyKeyMismatch = errors.New("idempotency key was already used for a different request")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrIdempotencyInProgress):
		return CodeIdempotencyConflict
	case errors.Is(err, ErrIdempotencyKeyMismatch):
		return CodeIdempotencyMismatch
	case errors.Is(err, ErrStorageFailure):
		return CodeStorageFailure
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError carries the figures behind a rejected debit
type InsufficientCreditsError struct {
	AccountID string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for account %s: required %d, available %d",
		e.AccountID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"account_id": e.AccountID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(accountID string, requested, available int64) error {
	return &InsufficientCreditsError{
		AccountID: accountID,
		Requested: requested,
		Available: available,
	}
}

// StorageError wraps a driver or ORM failure with the operation that hit it
type StorageError struct {
	Operation string
	AccountID string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s for account %s: %v", e.Operation, e.AccountID, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports every StorageError as an ErrStorageFailure
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_failure",
		"operation":  e.Operation,
		"account_id": e.AccountID,
		"error":      e.Err.Error(),
		"error_code": CodeStorageFailure,
	}
}

// NewStorageError creates a storage error for the given operation
func NewStorageError(operation, accountID string, err error) error {
	return &StorageError{
		Operation: operation,
		AccountID: accountID,
		Err:       err,
	}
}

// LedgerError represents a failure while pairing a balance change with its ledger row
type LedgerError struct {
	AccountID string
	Kind      string
	Amount    int64
	Reason    string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger error for account %s (kind: %s, amount: %d): %s - %v",
		e.AccountID, e.Kind, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"account_id": e.AccountID,
		"kind":       e.Kind,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(accountID, kind string, amount int64, reason string, err error) error {
	return &LedgerError{
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAccountNotFound)
}

// IsStorageFailure checks if the error is a storage fault
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

// IsValidationError checks if the error was caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidRequest)
}
