package entity

// LedgerAggregate holds the figures computed from an account's ledger rows
type LedgerAggregate struct {
	TotalEarned      int64 // Sum of positive amounts, INITIAL included
	TotalUsed        int64 // Sum of absolute negative amounts
	NetAmount        int64 // Sum of all amounts
	TransactionCount int64
}

// CreditStats combines the ledger aggregate with the balance row it must agree with
type CreditStats struct {
	TotalEarned      int64
	TotalUsed        int64
	CurrentBalance   int64
	TotalConsumed    int64
	TransactionCount int64
	Consistent       bool
}

// NewCreditStats cross-checks an aggregate against the account it describes.
// A nil account means no balance row exists; stats are zero and consistent only if the ledger is empty too.
func NewCreditStats(agg LedgerAggregate, account *Account) CreditStats {
	stats := CreditStats{
		TotalEarned:      agg.TotalEarned,
		TotalUsed:        agg.TotalUsed,
		TransactionCount: agg.TransactionCount,
	}

	if account == nil {
		stats.Consistent = agg.TransactionCount == 0
		return stats
	}

	stats.CurrentBalance = account.Balance()
	stats.TotalConsumed = account.TotalConsumed
	stats.Consistent = agg.NetAmount == account.Balance() && agg.TotalUsed == account.TotalConsumed
	return stats
}

// BalanceDrift returns how far the ledger's net amount is from the stored balance
func (s CreditStats) BalanceDrift(agg LedgerAggregate) int64 {
	return agg.NetAmount - s.CurrentBalance
}

// ConsumedDrift returns how far the ledger's debits are from the stored total_consumed
func (s CreditStats) ConsumedDrift() int64 {
	return s.TotalUsed - s.TotalConsumed
}
