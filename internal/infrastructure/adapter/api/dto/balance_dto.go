package dto

import "time"

// BalanceResponse represents the API response for an account's balance
type BalanceResponse struct {
	Credits     int64     `json:"credits"`
	TotalUsed   int64     `json:"totalUsed"`
	LowBalance  bool      `json:"lowBalance"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// EnsureAccountResponse is returned by POST /api/credits/ensure
type EnsureAccountResponse struct {
	Credits int64 `json:"credits"`
	Created bool  `json:"created"`
}

// CheckCreditsRequest binds the query of GET /api/credits/check
type CheckCreditsRequest struct {
	Required int64 `form:"required" binding:"required,gt=0"`
}

// CheckCreditsResponse tells whether the account can cover the requested credits
type CheckCreditsResponse struct {
	Sufficient bool `json:"sufficient"`
}
