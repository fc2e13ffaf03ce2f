package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// Grant credits amount under kind and records the row atomically. Only PURCHASE, BONUS and REFUND are accepted.
func (s *Service) Grant(ctx context.Context, accountID string, amount int64, kind entity.TransactionKind, description string) (entity.MutationResult, error) {
	if err := validateMutation(accountID, amount); err != nil {
		return entity.MutationResult{}, err
	}
	if !kind.IsGrant() {
		return entity.MutationResult{}, fmt.Errorf("%w: %q cannot be granted", errs.ErrInvalidKind, kind)
	}
	description = descriptionOrDefault(description, DefaultGrantDescription)

	var result entity.MutationResult
	err := s.withUnitOfWork(ctx, "grant", accountID, func(txCtx context.Context, store persistence.BalanceStore, ledger persistence.TransactionLedger) (bool, error) {
		res, err := store.Credit(txCtx, accountID, amount)
		if err != nil {
			return false, err
		}
		result = res
		if !res.OK {
			return false, nil
		}

		credit, err := entity.NewCreditTransaction(accountID, kind, amount, res.NewBalance, description, s.timeProvider)
		if err != nil {
			return false, err
		}
		if err := ledger.Append(txCtx, credit); err != nil {
			return false, errs.NewLedgerError(accountID, kind.String(), amount, "append credit row", err)
		}
		return true, nil
	})
	if err != nil {
		s.logger.Error("Grant failed", map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"kind":       kind.String(),
			"error":      err.Error(),
		})
		return entity.MutationResult{}, err
	}

	if !result.OK {
		s.logger.Warn("Grant rejected", map[string]any{
			"account_id": accountID,
			"kind":       kind.String(),
			"reason":     string(result.Reason),
		})
		return result, nil
	}

	s.logger.Info("Credits granted", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"kind":        kind.String(),
		"new_balance": result.NewBalance,
	})
	return result, nil
}
