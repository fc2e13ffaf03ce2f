package ledger

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// GetBalance reads an account outside any unit of work
func (s *Service) GetBalance(ctx context.Context, accountID string) (*entity.Account, bool, error) {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return nil, false, err
	}

	account, found, err := s.uow.GetBalanceStore(ctx).Get(ctx, accountID)
	if err != nil {
		s.logger.Error("Failed to read balance", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, false, asStorageError("get_balance", accountID, err)
	}
	return account, found, nil
}

// HasSufficient reports whether the account could cover required credits right now.
// The answer is advisory; Spend re-checks atomically.
func (s *Service) HasSufficient(ctx context.Context, accountID string, required int64) (bool, error) {
	if err := validateMutation(accountID, required); err != nil {
		return false, err
	}

	account, found, err := s.GetBalance(ctx, accountID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return account.CanCover(required), nil
}

// IsLowBalance reports whether the account is at or below the low balance threshold
func (s *Service) IsLowBalance(account *entity.Account) bool {
	if account == nil {
		return false
	}
	return account.IsLowBalance(s.config.LowBalanceThreshold)
}
