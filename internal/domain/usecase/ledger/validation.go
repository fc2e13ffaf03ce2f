package ledger

import (
	"strings"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// Default descriptions recorded when the caller gives none
const (
	DefaultSpendDescription = "Prompt generation"
	DefaultGrantDescription = "Credits added"
	welcomeDescriptionFmt   = "Welcome bonus - %d free credits"
)

// validateMutation checks the inputs shared by spend and grant
func validateMutation(accountID string, amount int64) error {
	if err := entity.ValidateAccountID(accountID); err != nil {
		return err
	}
	return entity.ValidateCreditAmount(amount)
}

// descriptionOrDefault trims the caller's description and falls back when it is blank
func descriptionOrDefault(description, fallback string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return fallback
	}
	return description
}
