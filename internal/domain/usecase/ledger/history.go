package ledger

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// ListTransactions returns a page of the account's ledger, newest first unless asked otherwise.
// One extra row is read to tell whether another page follows.
func (s *Service) ListTransactions(ctx context.Context, accountID string, opts entity.ListOptions) (*entity.TransactionPage, error) {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	opts = opts.Normalize(s.config.DefaultPageSize, s.config.MaxPageSize)

	fetch := opts
	fetch.Limit = opts.Limit + 1

	transactions, err := s.uow.GetTransactionLedger(ctx).List(ctx, accountID, fetch)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, asStorageError("list_transactions", accountID, err)
	}

	page := &entity.TransactionPage{Limit: opts.Limit}
	if len(transactions) > opts.Limit {
		transactions = transactions[:opts.Limit]
		page.NextCursor = transactions[opts.Limit-1].ID
	}
	page.Transactions = transactions
	return page, nil
}

// GetStats aggregates the ledger and cross-checks it against the balance row.
// A mismatch is reported and logged, never repaired.
func (s *Service) GetStats(ctx context.Context, accountID string) (*entity.CreditStats, error) {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	agg, err := s.uow.GetTransactionLedger(ctx).Aggregate(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to aggregate ledger", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, asStorageError("aggregate", accountID, err)
	}
	if agg == nil {
		agg = &entity.LedgerAggregate{}
	}

	account, found, err := s.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !found {
		account = nil
	}

	stats := entity.NewCreditStats(*agg, account)
	if !stats.Consistent {
		s.logger.Warn("Ledger does not match balance", map[string]any{
			"account_id":        accountID,
			"ledger_net":        agg.NetAmount,
			"ledger_total_used": agg.TotalUsed,
			"current_balance":   stats.CurrentBalance,
			"total_consumed":    stats.TotalConsumed,
			"transaction_count": agg.TransactionCount,
			"balance_drift":     stats.BalanceDrift(*agg),
			"consumed_drift":    stats.ConsumedDrift(),
		})
	}
	return &stats, nil
}
