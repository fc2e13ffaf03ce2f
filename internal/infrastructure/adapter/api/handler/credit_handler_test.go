package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *mockusecase.MockLedgerUseCase, *mockusecase.MockSpendGuard) {
	ledger := mockusecase.NewMockLedgerUseCase(t)
	guard := mockusecase.NewMockSpendGuard(t)
	h := NewCreditHandler(ledger, guard, logger.NewNoopLogger())

	router := gin.New()
	credits := router.Group("/api/credits")
	credits.GET("", h.GetBalance)
	credits.POST("/ensure", h.EnsureAccount)
	credits.GET("/check", h.CheckCredits)
	credits.POST("/spend", h.Spend)
	credits.POST("/grant", h.Grant)
	credits.GET("/transactions", h.ListTransactions)
	credits.GET("/stats", h.GetStats)

	return router, ledger, guard
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(AccountIDHeader, "user-1")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetBalance(t *testing.T) {
	t.Run("Ensures the account and reports low balance", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)
		account := entity.RestoreAccount("user-1", 2, 8, fixedTime, fixedTime)

		// Setup mocks
		ledger.On("EnsureAccount", mock.Anything, "user-1").Return(account, false, nil)
		ledger.On("IsLowBalance", account).Return(true)

		w := doRequest(router, http.MethodGet, "/api/credits", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Credits)
		assert.Equal(t, int64(8), resp.TotalUsed)
		assert.True(t, resp.LowBalance)
		assert.True(t, fixedTime.Equal(resp.LastUpdated))
	})

	t.Run("Storage failure hides the cause", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("EnsureAccount", mock.Anything, "user-1").
			Return(nil, false, errs.NewStorageError("initialize", "user-1", assert.AnError))

		w := doRequest(router, http.MethodGet, "/api/credits", "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, errs.CodeStorageFailure, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestEnsureAccount(t *testing.T) {
	router, ledger, _ := setupRouter(t)
	account := entity.RestoreAccount("user-1", 10, 0, fixedTime, fixedTime)

	// Setup mocks
	ledger.On("EnsureAccount", mock.Anything, "user-1").Return(account, true, nil)

	w := doRequest(router, http.MethodPost, "/api/credits/ensure", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"credits":10,"created":true}`, w.Body.String())
}

func TestCheckCredits(t *testing.T) {
	t.Run("Sufficient", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("HasSufficient", mock.Anything, "user-1", int64(5)).Return(true, nil)

		w := doRequest(router, http.MethodGet, "/api/credits/check?required=5", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sufficient":true}`, w.Body.String())
	})

	t.Run("Missing required is a bad request", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		w := doRequest(router, http.MethodGet, "/api/credits/check", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, errs.CodeInvalidRequest, resp.Code)
		assert.Equal(t, "required", resp.Details["required"])
	})
}

func TestSpend(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		headers        map[string]string
		setupMocks     func(guard *mockusecase.MockSpendGuard)
		expectedStatus int
		expectedCode   int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"amount":3,"description":"Prompt generation"}`,
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "", int64(3), "Prompt generation").
					Return(entity.Succeeded(7), false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"newBalance":7}`,
		},
		{
			name:    "Replayed with idempotency key",
			body:    `{"amount":3}`,
			headers: map[string]string{IdempotencyKeyHeader: "req-1"},
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "req-1", int64(3), "").
					Return(entity.Succeeded(7), true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"newBalance":7,"replayed":true}`,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":10}`,
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "", int64(10), "").
					Return(entity.Rejected(entity.ReasonInsufficientFunds), false, nil)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   errs.CodeInsufficientCredits,
			expectedBody:   `{"code":4001,"message":"Insufficient credits"}`,
		},
		{
			name: "Account not found",
			body: `{"amount":1}`,
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "", int64(1), "").
					Return(entity.Rejected(entity.ReasonNotFound), false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"code":4040,"message":"Account not found"}`,
		},
		{
			name:    "Idempotency key in progress",
			body:    `{"amount":1}`,
			headers: map[string]string{IdempotencyKeyHeader: "req-2"},
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "req-2", int64(1), "").
					Return(entity.MutationResult{}, false, errs.ErrIdempotencyInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   errs.CodeIdempotencyConflict,
		},
		{
			name:    "Idempotency key mismatch",
			body:    `{"amount":2}`,
			headers: map[string]string{IdempotencyKeyHeader: "req-3"},
			setupMocks: func(guard *mockusecase.MockSpendGuard) {
				guard.On("Spend", mock.Anything, "user-1", "req-3", int64(2), "").
					Return(entity.MutationResult{}, false, errs.ErrIdempotencyKeyMismatch)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   errs.CodeIdempotencyMismatch,
		},
		{
			name:           "Zero amount fails binding",
			body:           `{"amount":0}`,
			setupMocks:     func(guard *mockusecase.MockSpendGuard) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeInvalidRequest,
		},
		{
			name:           "Negative amount fails binding",
			body:           `{"amount":-4}`,
			setupMocks:     func(guard *mockusecase.MockSpendGuard) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeInvalidRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"amount":`,
			setupMocks:     func(guard *mockusecase.MockSpendGuard) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, guard := setupRouter(t)

			// Setup mocks
			tt.setupMocks(guard)

			w := doRequest(router, http.MethodPost, "/api/credits/spend", tt.body, tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedCode != 0 {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Code)
			}
		})
	}
}

func TestGrant(t *testing.T) {
	t.Run("Success with lowercase kind", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("Grant", mock.Anything, "user-1", int64(5), entity.KindBonus, "Referral").
			Return(entity.Succeeded(12), nil)

		w := doRequest(router, http.MethodPost, "/api/credits/grant", `{"amount":5,"kind":"bonus","description":"Referral"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"newBalance":12}`, w.Body.String())
	})

	t.Run("Account not found", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("Grant", mock.Anything, "user-1", int64(5), entity.KindPurchase, "").
			Return(entity.Rejected(entity.ReasonNotFound), nil)

		w := doRequest(router, http.MethodPost, "/api/credits/grant", `{"amount":5,"kind":"PURCHASE"}`, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeAccountNotFound, decodeError(t, w).Code)
	})

	for _, kind := range []string{"DEBIT", "INITIAL", "GIFT"} {
		t.Run("Rejects kind "+kind, func(t *testing.T) {
			router, _, _ := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/api/credits/grant", `{"amount":5,"kind":"`+kind+`"}`, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, errs.CodeInvalidRequest, resp.Code)
			assert.Equal(t, "grantkind", resp.Details["kind"])
		})
	}
}

func TestListTransactions(t *testing.T) {
	rows := []*entity.Transaction{
		{ID: 9, AccountID: "user-1", Amount: -3, BalanceAfter: 7, Kind: entity.KindDebit, Description: "Prompt generation", CreatedAt: fixedTime},
		{ID: 4, AccountID: "user-1", Amount: 10, BalanceAfter: 10, Kind: entity.KindInitial, CreatedAt: fixedTime},
	}

	t.Run("Full page returns a cursor", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("ListTransactions", mock.Anything, "user-1", entity.ListOptions{Limit: 2, Order: entity.OrderNewestFirst}).
			Return(&entity.TransactionPage{Transactions: rows, Limit: 2, NextCursor: 4}, nil)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions?limit=2", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "DEBIT", resp.Transactions[0].Kind)
		assert.Equal(t, int64(-3), resp.Transactions[0].Amount)
		assert.Equal(t, encodeCursor(4), resp.NextCursor)
	})

	t.Run("Cursor and order are passed through", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("ListTransactions", mock.Anything, "user-1", entity.ListOptions{Limit: 5, Order: entity.OrderOldestFirst, Cursor: 4}).
			Return(&entity.TransactionPage{Transactions: rows[:1], Limit: 5}, nil)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions?limit=5&order=asc&cursor="+encodeCursor(4), "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Transactions, 1)
		assert.Empty(t, resp.NextCursor)
	})

	t.Run("Limit above the maximum still pages", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("ListTransactions", mock.Anything, "user-1", entity.ListOptions{Limit: 150, Order: entity.OrderNewestFirst}).
			Return(&entity.TransactionPage{Transactions: rows, Limit: 2, NextCursor: 4}, nil)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions?limit=150", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Transactions, 2)
		assert.Equal(t, encodeCursor(4), resp.NextCursor)
	})

	t.Run("Empty history", func(t *testing.T) {
		router, ledger, _ := setupRouter(t)

		// Setup mocks
		ledger.On("ListTransactions", mock.Anything, "user-1", entity.ListOptions{Order: entity.OrderNewestFirst}).
			Return(&entity.TransactionPage{Transactions: []*entity.Transaction{}, Limit: 20}, nil)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"transactions":[]}`, w.Body.String())
	})

	t.Run("Bad cursor", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions?cursor=%25%25", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("Bad order", func(t *testing.T) {
		router, _, _ := setupRouter(t)

		w := doRequest(router, http.MethodGet, "/api/credits/transactions?order=sideways", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetStats(t *testing.T) {
	router, ledger, _ := setupRouter(t)

	// Setup mocks
	ledger.On("GetStats", mock.Anything, "user-1").Return(&entity.CreditStats{
		TotalEarned:      15,
		TotalUsed:        3,
		CurrentBalance:   12,
		TotalConsumed:    3,
		TransactionCount: 3,
		Consistent:       true,
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/credits/stats", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"totalEarned":15,"totalUsed":3,"currentBalance":12,"transactionCount":3,"totalConsumed":3,"consistent":true}}`, w.Body.String())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{errs.ErrAccountNotFound, http.StatusNotFound},
		{errs.NewInsufficientCreditsError("u", 5, 1), http.StatusPaymentRequired},
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.ErrAmountOverflow, http.StatusBadRequest},
		{errs.ErrInvalidKind, http.StatusBadRequest},
		{errs.ErrInvalidAccountID, http.StatusBadRequest},
		{errs.ErrIdempotencyInProgress, http.StatusConflict},
		{errs.ErrIdempotencyKeyMismatch, http.StatusUnprocessableEntity},
		{errs.NewStorageError("debit", "u", assert.AnError), http.StatusInternalServerError},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	id, err := decodeCursor(encodeCursor(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	id, err = decodeCursor("")
	require.NoError(t, err)
	assert.Zero(t, id)

	_, err = decodeCursor(encodeCursor(0))
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
