package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// Request headers read by the credit endpoints
const (
	AccountIDHeader      = "X-Account-ID"
	IdempotencyKeyHeader = "Idempotency-Key"
)

// CreditHandler handles HTTP requests for an account's credits
type CreditHandler struct {
	ledger usecase.LedgerUseCase
	guard  usecase.SpendGuard
	logger coreport.Logger
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(
	ledger usecase.LedgerUseCase,
	guard usecase.SpendGuard,
	logger coreport.Logger,
) *CreditHandler {
	return &CreditHandler{
		ledger: ledger,
		guard:  guard,
		logger: logger,
	}
}

// accountID returns the authenticated account; RequireAccount has already rejected empty headers
func accountID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(AccountIDHeader))
}

// GetBalance handles GET /api/credits.
// The account is ensured first so a new user sees their starting credits.
func (h *CreditHandler) GetBalance(c *gin.Context) {
	ctx := c.Request.Context()

	account, _, err := h.ledger.EnsureAccount(ctx, accountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Credits:     account.Balance(),
		TotalUsed:   account.TotalConsumed,
		LowBalance:  h.ledger.IsLowBalance(account),
		LastUpdated: account.LastUpdated,
	})
}

// EnsureAccount handles POST /api/credits/ensure
func (h *CreditHandler) EnsureAccount(c *gin.Context) {
	account, created, err := h.ledger.EnsureAccount(c.Request.Context(), accountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.EnsureAccountResponse{
		Credits: account.Balance(),
		Created: created,
	})
}

// CheckCredits handles GET /api/credits/check?required=N
func (h *CreditHandler) CheckCredits(c *gin.Context) {
	var req dto.CheckCreditsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	sufficient, err := h.ledger.HasSufficient(c.Request.Context(), accountID(c), req.Required)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckCreditsResponse{Sufficient: sufficient})
}

// Spend handles POST /api/credits/spend
func (h *CreditHandler) Spend(c *gin.Context) {
	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	id := accountID(c)
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))

	result, replayed, err := h.guard.Spend(c.Request.Context(), id, key, req.Amount, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !result.OK {
		h.logger.Info("Spend rejected", map[string]any{
			"account_id": id,
			"amount":     req.Amount,
			"reason":     string(result.Reason),
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		})
		respondError(c, h.logger, result.Err())
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		Success:    true,
		NewBalance: result.NewBalance,
		Replayed:   replayed,
	})
}

// Grant handles POST /api/credits/grant
func (h *CreditHandler) Grant(c *gin.Context) {
	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	kind, err := entity.ParseTransactionKind(req.Kind)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.ledger.Grant(c.Request.Context(), accountID(c), req.Amount, kind, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !result.OK {
		respondError(c, h.logger, result.Err())
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		Success:    true,
		NewBalance: result.NewBalance,
	})
}

// ListTransactions handles GET /api/credits/transactions
func (h *CreditHandler) ListTransactions(c *gin.Context) {
	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := entity.ParseSortOrder(req.Order)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	cursor, err := decodeCursor(req.Cursor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	opts := entity.ListOptions{Limit: req.Limit, Order: order, Cursor: cursor}
	page, err := h.ledger.ListTransactions(c.Request.Context(), accountID(c), opts)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.TransactionsResponse{Transactions: make([]dto.TransactionResponse, 0, len(page.Transactions))}
	for _, t := range page.Transactions {
		resp.Transactions = append(resp.Transactions, dto.NewTransactionResponse(t))
	}
	if page.NextCursor > 0 {
		resp.NextCursor = encodeCursor(page.NextCursor)
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats handles GET /api/credits/stats
func (h *CreditHandler) GetStats(c *gin.Context) {
	stats, err := h.ledger.GetStats(c.Request.Context(), accountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
