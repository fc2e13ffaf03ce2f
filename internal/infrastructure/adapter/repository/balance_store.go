package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

const (
	initializeAccountSQL = `INSERT INTO credit_accounts (account_id, balance, total_consumed, last_updated, created_at) ` +
		`VALUES (?, ?, 0, ?, ?) ON CONFLICT (account_id) DO NOTHING`

	// The balance check and the decrement are one statement; the row lock serializes concurrent debits.
	debitIfSufficientSQL = `UPDATE credit_accounts SET balance = balance - ?, total_consumed = total_consumed + ?, last_updated = ? ` +
		`WHERE account_id = ? AND balance >= ? RETURNING balance`

	creditSQL = `UPDATE credit_accounts SET balance = balance + ?, last_updated = ? WHERE account_id = ? RETURNING balance`
)

// BalanceStore implements persistence.BalanceStore using GORM
type BalanceStore struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.BalanceStore = (*BalanceStore)(nil)

// NewBalanceStore creates a new BalanceStore instance
func NewBalanceStore(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceStore {
	return &BalanceStore{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *BalanceStore) modelToEntity(row *model.CreditAccount) *entity.Account {
	return entity.RestoreAccount(row.AccountID, row.Balance, row.TotalConsumed, row.CreatedAt, row.LastUpdated)
}

// handleDatabaseError standardizes database error handling
func (r *BalanceStore) handleDatabaseError(operation string, err error, accountID string) error {
	errorType := r.errorClassifier.Classify(err)
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
		"error_type": string(errorType),
	})

	if errorType == OverflowError {
		return fmt.Errorf("%w: balance of account %s would overflow", errs.ErrAmountOverflow, accountID)
	}
	return errs.NewStorageError(operation, accountID, err)
}

// Initialize inserts the balance row unless it already exists
func (r *BalanceStore) Initialize(ctx context.Context, accountID string, startingBalance int64) (*entity.Account, bool, error) {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return nil, false, err
	}
	if startingBalance < 0 {
		return nil, false, fmt.Errorf("%w: starting balance cannot be negative", errs.ErrInvalidAmount)
	}

	r.logger.Debug("Initializing account", map[string]any{
		"account_id":       accountID,
		"starting_balance": startingBalance,
	})

	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Exec(initializeAccountSQL, accountID, startingBalance, now, now)
	if result.Error != nil {
		return nil, false, r.handleDatabaseError("initializing account", result.Error, accountID)
	}

	if result.RowsAffected == 1 {
		r.logger.Info("Account initialized", map[string]any{
			"account_id":       accountID,
			"starting_balance": startingBalance,
		})
		return entity.RestoreAccount(accountID, startingBalance, 0, now, now), true, nil
	}

	// Lost the race or the row already existed; return what is stored.
	account, found, err := r.Get(ctx, accountID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, errs.NewStorageError("initializing account", accountID, errors.New("row neither inserted nor found"))
	}
	return account, false, nil
}

// Get reads the balance row
func (r *BalanceStore) Get(ctx context.Context, accountID string) (*entity.Account, bool, error) {
	var row model.CreditAccount
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, r.handleDatabaseError("getting account", result.Error, accountID)
	}

	return r.modelToEntity(&row), true, nil
}

// DebitIfSufficient subtracts amount only if the stored balance covers it
func (r *BalanceStore) DebitIfSufficient(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error) {
	if amount <= 0 {
		return entity.MutationResult{}, fmt.Errorf("%w: debit of %d", errs.ErrInvalidAmount, amount)
	}

	var newBalance int64
	result := r.db.WithContext(ctx).
		Raw(debitIfSufficientSQL, amount, amount, r.timeProvider.Now(), accountID, amount).
		Scan(&newBalance)
	if result.Error != nil {
		return entity.MutationResult{}, r.handleDatabaseError("debiting account", result.Error, accountID)
	}

	if result.RowsAffected == 0 {
		// Classify the rejection; the probe never feeds back into the mutation.
		exists, err := r.exists(ctx, accountID)
		if err != nil {
			return entity.MutationResult{}, err
		}
		if !exists {
			r.logger.Warn("Debit on unknown account", map[string]any{
				"account_id": accountID,
				"amount":     amount,
			})
			return entity.Rejected(entity.ReasonNotFound), nil
		}
		r.logger.Debug("Insufficient credits for debit", map[string]any{
			"account_id": accountID,
			"amount":     amount,
		})
		return entity.Rejected(entity.ReasonInsufficientFunds), nil
	}

	r.logger.Debug("Account debited", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"new_balance": newBalance,
	})
	return entity.Succeeded(newBalance), nil
}

// Credit adds amount to the stored balance
func (r *BalanceStore) Credit(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error) {
	if amount <= 0 {
		return entity.MutationResult{}, fmt.Errorf("%w: credit of %d", errs.ErrInvalidAmount, amount)
	}

	var newBalance int64
	result := r.db.WithContext(ctx).
		Raw(creditSQL, amount, r.timeProvider.Now(), accountID).
		Scan(&newBalance)
	if result.Error != nil {
		return entity.MutationResult{}, r.handleDatabaseError("crediting account", result.Error, accountID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Credit on unknown account", map[string]any{
			"account_id": accountID,
			"amount":     amount,
		})
		return entity.Rejected(entity.ReasonNotFound), nil
	}

	r.logger.Debug("Account credited", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"new_balance": newBalance,
	})
	return entity.Succeeded(newBalance), nil
}

func (r *BalanceStore) exists(ctx context.Context, accountID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CreditAccount{}).Where("account_id = ?", accountID).Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("probing account", result.Error, accountID)
	}
	return count > 0, nil
}
