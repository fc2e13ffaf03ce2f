package migration

import (
	"context"
)

// defaultAccounts are created in development when no seed list is configured
var defaultAccounts = []string{"demo-user-1", "demo-user-2", "demo-user-3"}

// AccountSeeder creates accounts through the ledger so each gets its INITIAL row
type AccountSeeder interface {
	SeedAccounts(ctx context.Context, accountIDs []string) error
}

// SeedAccounts seeds the configured accounts, falling back to the demo set in development
func SeedAccounts(ctx context.Context, seeder AccountSeeder, configured []string, development bool) error {
	accountIDs := configured
	if len(accountIDs) == 0 && development {
		accountIDs = defaultAccounts
	}
	if len(accountIDs) == 0 {
		return nil
	}
	return seeder.SeedAccounts(ctx, accountIDs)
}
