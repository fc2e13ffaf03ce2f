package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors raised outside the repositories to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error.
// Anything that is not a plain lookup miss or an overflow is a storage failure.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	switch m.classifier.Classify(err) {
	case repository.OverflowError:
		return fmt.Errorf("%w: %s", errs.ErrAmountOverflow, operation)
	case repository.CanceledError:
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewStorageError(operation+" (timed out)", "", err)
		}
		return errs.NewStorageError(operation+" (canceled)", "", err)
	default:
		return errs.NewStorageError(operation, "", err)
	}
}

// IsRetryable reports whether the error is worth retrying at startup
func (m *ErrorMapper) IsRetryable(err error) bool {
	switch m.classifier.Classify(err) {
	case repository.TransientError, repository.ConnectionError, repository.LockError:
		return true
	}
	return false
}
