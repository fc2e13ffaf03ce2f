package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestIdempotencyRecord(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	record := NewPendingIdempotencyRecord("token-1", "fp", mockTime)
	assert.Equal(t, IdempotencyPending, record.Status)
	assert.False(t, record.IsCompleted())
	assert.Equal(t, fixedTime, record.CreatedAt)

	record.Complete(Succeeded(7))
	assert.True(t, record.IsCompleted())
	assert.Equal(t, int64(7), record.Result.NewBalance)
}

func TestSpendFingerprint(t *testing.T) {
	assert.Equal(t, SpendFingerprint(3, "Prompt generation"), SpendFingerprint(3, "Prompt generation"))
	assert.NotEqual(t, SpendFingerprint(3, "Prompt generation"), SpendFingerprint(4, "Prompt generation"))
	assert.NotEqual(t, SpendFingerprint(3, "a"), SpendFingerprint(3, "b"))
	// amount and description must not run together
	assert.NotEqual(t, SpendFingerprint(1, "2x"), SpendFingerprint(12, "x"))
}

func TestValidateIdempotencyKey(t *testing.T) {
	assert.NoError(t, ValidateIdempotencyKey("9b2f7c1e-spend-01"))
	assert.ErrorIs(t, ValidateIdempotencyKey(""), errs.ErrInvalidRequest)
	assert.ErrorIs(t, ValidateIdempotencyKey("   "), errs.ErrInvalidRequest)
	assert.ErrorIs(t, ValidateIdempotencyKey("has space"), errs.ErrInvalidRequest)
	assert.ErrorIs(t, ValidateIdempotencyKey(strings.Repeat("k", MaxIdempotencyKeyLength+1)), errs.ErrInvalidRequest)
}
