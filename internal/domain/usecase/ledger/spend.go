package ledger

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// Spend debits amount credits and records the DEBIT row atomically.
// An insufficient balance or a missing account is a rejected result with a nil error; nothing is written.
func (s *Service) Spend(ctx context.Context, accountID string, amount int64, description string) (entity.MutationResult, error) {
	if err := validateMutation(accountID, amount); err != nil {
		return entity.MutationResult{}, err
	}
	description = descriptionOrDefault(description, DefaultSpendDescription)

	var result entity.MutationResult
	err := s.withUnitOfWork(ctx, "spend", accountID, func(txCtx context.Context, store persistence.BalanceStore, ledger persistence.TransactionLedger) (bool, error) {
		res, err := store.DebitIfSufficient(txCtx, accountID, amount)
		if err != nil {
			return false, err
		}
		result = res
		if !res.OK {
			return false, nil
		}

		debit, err := entity.NewDebitTransaction(accountID, amount, res.NewBalance, description, s.timeProvider)
		if err != nil {
			return false, err
		}
		if err := ledger.Append(txCtx, debit); err != nil {
			return false, errs.NewLedgerError(accountID, entity.KindDebit.String(), amount, "append debit row", err)
		}
		return true, nil
	})
	if err != nil {
		s.logger.Error("Spend failed", map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"error":      err.Error(),
		})
		return entity.MutationResult{}, err
	}

	if !result.OK {
		s.logger.Warn("Spend rejected", map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"reason":     string(result.Reason),
		})
		return result, nil
	}

	s.logger.Info("Credits spent", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"new_balance": result.NewBalance,
	})
	return result, nil
}
