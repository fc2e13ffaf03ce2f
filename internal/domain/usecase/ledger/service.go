package ledger

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Config holds the business settings of the ledger
type Config struct {
	StartingBalance     int64 // Credits granted by the INITIAL row
	DefaultPageSize     int   // History page size when the caller gives none
	MaxPageSize         int   // Upper bound on a history page
	LowBalanceThreshold int64 // Balances at or below this are flagged
}

// DefaultConfig returns the settings the ledger uses when none are configured
func DefaultConfig() Config {
	return Config{
		StartingBalance:     10,
		DefaultPageSize:     20,
		MaxPageSize:         100,
		LowBalanceThreshold: 3,
	}
}

// Service is the ledger facade. Every balance change and its ledger row are written in one unit of work.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewLedgerService creates a new ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.StartingBalance < 0 {
		config.StartingBalance = 0
	}

	logger.Info("Ledger service initialized", map[string]any{
		"starting_balance":      config.StartingBalance,
		"default_page_size":     config.DefaultPageSize,
		"max_page_size":         config.MaxPageSize,
		"low_balance_threshold": config.LowBalanceThreshold,
	})

	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Config returns the settings the service runs with
func (s *Service) Config() Config {
	return s.config
}

// unitOfWorkFunc does the work of one atomic unit.
// Returning commit=false with a nil error rolls back without reporting a fault.
type unitOfWorkFunc func(txCtx context.Context, store persistence.BalanceStore, ledger persistence.TransactionLedger) (commit bool, err error)

// withUnitOfWork runs fn inside a transaction. Errors and panics roll back; a panic is re-raised after rollback.
func (s *Service) withUnitOfWork(ctx context.Context, operation, accountID string, fn unitOfWorkFunc) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return asStorageError(operation+".begin", accountID, err)
	}

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("Panic inside unit of work", map[string]any{
				"operation":  operation,
				"account_id": accountID,
				"panic":      fmt.Sprint(p),
			})
			s.rollback(txCtx, operation, accountID)
			panic(p)
		}
	}()

	commit, err := fn(txCtx, s.uow.GetBalanceStore(txCtx), s.uow.GetTransactionLedger(txCtx))
	if err != nil {
		s.rollback(txCtx, operation, accountID)
		return asStorageError(operation, accountID, err)
	}
	if !commit {
		s.rollback(txCtx, operation, accountID)
		return nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, operation, accountID)
		return asStorageError(operation+".commit", accountID, err)
	}
	return nil
}

// rollback logs rollback failures instead of returning them so the original error survives
func (s *Service) rollback(txCtx context.Context, operation, accountID string) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back unit of work", map[string]any{
			"operation":  operation,
			"account_id": accountID,
			"error":      err.Error(),
		})
	}
}

// asStorageError keeps domain errors as they are and classifies anything else as a storage failure
func asStorageError(operation, accountID string, err error) error {
	if err == nil || errs.IsStorageFailure(err) || errs.IsValidationError(err) {
		return err
	}
	return errs.NewStorageError(operation, accountID, err)
}
