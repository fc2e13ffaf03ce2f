package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	OverflowError     ErrorType = "overflow"
	CanceledError     ErrorType = "canceled"
)

// PostgreSQL SQLSTATE codes the classifier cares about
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateNotNullViolation     = "23502"
	sqlStateCheckViolation       = "23514"
	sqlStateNumericOutOfRange    = "22003"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
	sqlStateAdminShutdown        = "57P01"
)

// ErrorClassifier provides methods to classify database errors.
// SQLSTATE codes from pgconn are checked first; message matching covers errors that lost their code on the way up.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsCanceledError(err) {
		return CanceledError
	}
	if c.IsOverflowError(err) {
		return OverflowError
	}
	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// sqlState extracts the SQLSTATE code if err carries a *pgconn.PgError
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func contains(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == sqlStateUniqueViolation {
		return true
	}
	return contains(err, "duplicate key", "unique constraint", "duplicate entry")
}

// IsOverflowError checks if a value did not fit its column
func (c *ErrorClassifier) IsOverflowError(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == sqlStateNumericOutOfRange {
		return true
	}
	return contains(err, "out of range")
}

// IsCanceledError checks if the statement was cut short by the caller's context or a statement timeout
func (c *ErrorClassifier) IsCanceledError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return sqlState(err) == sqlStateQueryCanceled
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == sqlStateAdminShutdown {
		return true
	}
	return contains(err, "connection reset", "connection refused", "timeout", "eof", "server closed", "broken pipe")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return true
	}
	return contains(err, "deadlock", "lock wait timeout", "could not serialize access", "serialization failure")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if strings.HasPrefix(sqlState(err), "08") {
		return true
	}
	return contains(err, "connection", "dial", "network") || c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateForeignKeyViolation, sqlStateNotNullViolation, sqlStateCheckViolation, sqlStateUniqueViolation:
		return true
	}
	return contains(err, "constraint", "violates", "foreign key", "not null") || c.IsDuplicateKeyError(err)
}
