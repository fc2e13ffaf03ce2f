package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// EnsureAccount creates the balance row on first use and records its INITIAL grant in the same unit of work.
// Concurrent callers race on the insert; only the winner writes the INITIAL row.
func (s *Service) EnsureAccount(ctx context.Context, accountID string) (*entity.Account, bool, error) {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return nil, false, err
	}

	var (
		account *entity.Account
		created bool
	)

	err := s.withUnitOfWork(ctx, "ensure_account", accountID, func(txCtx context.Context, store persistence.BalanceStore, ledger persistence.TransactionLedger) (bool, error) {
		acct, isNew, err := store.Initialize(txCtx, accountID, s.config.StartingBalance)
		if err != nil {
			return false, err
		}
		account, created = acct, isNew

		// Zero starting balances get no INITIAL row; ledger rows never carry a zero amount.
		if !isNew || s.config.StartingBalance == 0 {
			return true, nil
		}

		initial, err := entity.NewTransaction(
			accountID,
			entity.KindInitial,
			s.config.StartingBalance,
			s.config.StartingBalance,
			fmt.Sprintf(welcomeDescriptionFmt, s.config.StartingBalance),
			s.timeProvider,
		)
		if err != nil {
			return false, err
		}
		if err := ledger.Append(txCtx, initial); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		s.logger.Error("Failed to ensure account", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, false, err
	}

	if created {
		s.logger.Info("Account created", map[string]any{
			"account_id":       accountID,
			"starting_balance": s.config.StartingBalance,
		})
	}

	return account, created, nil
}

// SeedAccounts ensures every listed account exists, each with its INITIAL row
func (s *Service) SeedAccounts(ctx context.Context, accountIDs []string) error {
	for _, accountID := range accountIDs {
		_, created, err := s.EnsureAccount(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", accountID, err)
		}
		if created {
			s.logger.Debug("Seeded account", map[string]any{
				"account_id": accountID,
			})
		}
	}
	return nil
}
