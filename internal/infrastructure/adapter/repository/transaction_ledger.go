package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

const aggregateSQL = `SELECT ` +
	`COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS total_earned, ` +
	`COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS total_used, ` +
	`COALESCE(SUM(amount), 0) AS net_amount, ` +
	`COUNT(*) AS transaction_count ` +
	`FROM credit_transactions WHERE account_id = ?`

// aggregateRow receives the single row of aggregateSQL
type aggregateRow struct {
	TotalEarned      int64
	TotalUsed        int64
	NetAmount        int64
	TransactionCount int64
}

// TransactionLedger implements persistence.TransactionLedger using GORM
type TransactionLedger struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionLedger = (*TransactionLedger)(nil)

// NewTransactionLedger creates a new TransactionLedger instance
func NewTransactionLedger(db *gorm.DB, logger coreport.Logger) *TransactionLedger {
	return &TransactionLedger{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionLedger) entityToModel(transaction *entity.Transaction) model.CreditTransaction {
	return model.CreditTransaction{
		AccountID:    transaction.AccountID,
		Amount:       transaction.Amount,
		BalanceAfter: transaction.BalanceAfter,
		Kind:         transaction.Kind.String(),
		Description:  transaction.Description,
		CreatedAt:    transaction.CreatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionLedger) modelToEntity(row *model.CreditTransaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		Amount:       row.Amount,
		BalanceAfter: row.BalanceAfter,
		Kind:         entity.TransactionKind(row.Kind),
		Description:  row.Description,
		CreatedAt:    row.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionLedger) handleDatabaseError(operation string, err error, accountID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return errs.NewStorageError(operation, accountID, err)
}

// Append inserts one ledger row and copies the generated ID and timestamp back
func (r *TransactionLedger) Append(ctx context.Context, transaction *entity.Transaction) error {
	row := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row)
	if result.Error != nil {
		return r.handleDatabaseError("appending transaction", result.Error, transaction.AccountID)
	}

	transaction.ID = row.ID
	transaction.CreatedAt = row.CreatedAt

	r.logger.Debug("Transaction appended", map[string]any{
		"account_id":     transaction.AccountID,
		"transaction_id": transaction.ID,
		"kind":           transaction.Kind.String(),
		"amount":         transaction.Amount,
		"balance_after":  transaction.BalanceAfter,
	})
	return nil
}

// List returns up to opts.Limit rows ordered by ID, starting after the cursor.
// The limit is taken as given; callers bound it.
func (r *TransactionLedger) List(ctx context.Context, accountID string, opts entity.ListOptions) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if opts.Order == entity.OrderOldestFirst {
		if opts.Cursor > 0 {
			query = query.Where("id > ?", opts.Cursor)
		}
		query = query.Order("id ASC")
	} else {
		if opts.Cursor > 0 {
			query = query.Where("id < ?", opts.Cursor)
		}
		query = query.Order("id DESC")
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var rows []model.CreditTransaction
	if result := query.Find(&rows); result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, accountID)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, nil
}

// Aggregate sums the account's rows in a single query
func (r *TransactionLedger) Aggregate(ctx context.Context, accountID string) (*entity.LedgerAggregate, error) {
	var row aggregateRow
	if result := r.db.WithContext(ctx).Raw(aggregateSQL, accountID).Scan(&row); result.Error != nil {
		return nil, r.handleDatabaseError("aggregating transactions", result.Error, accountID)
	}

	return &entity.LedgerAggregate{
		TotalEarned:      row.TotalEarned,
		TotalUsed:        row.TotalUsed,
		NetAmount:        row.NetAmount,
		TransactionCount: row.TransactionCount,
	}, nil
}
