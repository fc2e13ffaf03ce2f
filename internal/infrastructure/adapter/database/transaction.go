package database

import (
	"context"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// Isolation levels accepted by database.isolationLevel
const (
	IsolationReadCommitted  = "READ COMMITTED"
	IsolationRepeatableRead = "REPEATABLE READ"
	IsolationSerializable   = "SERIALIZABLE"
)

// NormalizeIsolationLevel upper-cases a configured level and falls back to READ COMMITTED
func NormalizeIsolationLevel(level string) string {
	switch strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(level, "_", " "))) {
	case IsolationSerializable:
		return IsolationSerializable
	case IsolationRepeatableRead:
		return IsolationRepeatableRead
	default:
		return IsolationReadCommitted
	}
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db             *gorm.DB
	logger         coreport.Logger
	timeProvider   coreport.TimeProvider
	errorMapper    *ErrorMapper
	metrics        *MetricsCollector
	isolationLevel string
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, isolationLevel string) *UnitOfWork {
	return &UnitOfWork{
		db:             db,
		logger:         logger,
		timeProvider:   timeProvider,
		errorMapper:    NewErrorMapper(),
		metrics:        NewMetricsCollector(logger, timeProvider),
		isolationLevel: NormalizeIsolationLevel(isolationLevel),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{
		"isolation_level": u.isolationLevel,
	})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin")
	}

	// READ COMMITTED is the server default; only stricter levels need the statement.
	if u.isolationLevel != IsolationReadCommitted {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL " + u.isolationLevel).Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, u.errorMapper.MapError(err, "begin")
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errs.ErrNoActiveUnitOfWork
	}

	u.logger.Debug("Committing database transaction", nil)
	_, err := u.metrics.MeasureQuery(ctx, "commit", func() (int64, error) {
		return 0, tx.Commit().Error
	})
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit")
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errs.ErrNoActiveUnitOfWork
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A transaction that already finished is not a failure worth surfacing.
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return u.errorMapper.MapError(err, "rollback")
	}

	return nil
}

// GetBalanceStore returns a balance store bound to the current transaction
func (u *UnitOfWork) GetBalanceStore(ctx context.Context) persistence.BalanceStore {
	return repository.NewBalanceStore(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionLedger returns a ledger bound to the current transaction
func (u *UnitOfWork) GetTransactionLedger(ctx context.Context) persistence.TransactionLedger {
	return repository.NewTransactionLedger(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
