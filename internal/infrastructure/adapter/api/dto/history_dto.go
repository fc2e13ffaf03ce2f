package dto

import (
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// ListTransactionsRequest binds the query of GET /api/credits/transactions
type ListTransactionsRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,gt=0"`
	Order  string `form:"order"`
	Cursor string `form:"cursor"`
}

// TransactionResponse is one ledger row as exposed over HTTP
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balanceAfter"`
	Kind         string    `json:"kind"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionsResponse is a page of history with the cursor of the next page
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextCursor   string                `json:"nextCursor,omitempty"`
}

// StatsResponse wraps the ledger statistics
type StatsResponse struct {
	Stats StatsBody `json:"stats"`
}

// StatsBody carries the figures of GET /api/credits/stats
type StatsBody struct {
	TotalEarned      int64 `json:"totalEarned"`
	TotalUsed        int64 `json:"totalUsed"`
	CurrentBalance   int64 `json:"currentBalance"`
	TransactionCount int64 `json:"transactionCount"`
	TotalConsumed    int64 `json:"totalConsumed"`
	Consistent       bool  `json:"consistent"`
}

// NewTransactionResponse maps a ledger row
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Kind:         t.Kind.String(),
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// NewStatsResponse maps the ledger statistics
func NewStatsResponse(s *entity.CreditStats) StatsResponse {
	return StatsResponse{Stats: StatsBody{
		TotalEarned:      s.TotalEarned,
		TotalUsed:        s.TotalUsed,
		CurrentBalance:   s.CurrentBalance,
		TransactionCount: s.TransactionCount,
		TotalConsumed:    s.TotalConsumed,
		Consistent:       s.Consistent,
	}}
}
