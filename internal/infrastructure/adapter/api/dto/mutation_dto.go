package dto

// SpendRequest represents the body of POST /api/credits/spend
type SpendRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=500"`
}

// GrantRequest represents the body of POST /api/credits/grant
type GrantRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Kind        string `json:"kind" binding:"required,grantkind"`
	Description string `json:"description" binding:"max=500"`
}

// MutationResponse is returned when a spend or grant was applied
type MutationResponse struct {
	Success    bool  `json:"success"`
	NewBalance int64 `json:"newBalance"`
	Replayed   bool  `json:"replayed,omitempty"`
}
