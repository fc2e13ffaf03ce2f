package entity

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseTransactionKind(strings.ToLower(kind.String()))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseTransactionKind("GIFT")
	assert.ErrorIs(t, err, errs.ErrInvalidKind)
}

func TestTransactionKindPredicates(t *testing.T) {
	assert.True(t, KindBonus.IsGrant())
	assert.True(t, KindPurchase.IsGrant())
	assert.True(t, KindRefund.IsGrant())
	assert.False(t, KindInitial.IsGrant())
	assert.False(t, KindDebit.IsGrant())

	assert.True(t, KindInitial.IsCredit())
	assert.False(t, KindDebit.IsCredit())
	assert.False(t, TransactionKind("OTHER").IsCredit())

	assert.Len(t, GrantKinds(), 3)
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Debit transaction", func(t *testing.T) {
		tx, err := NewDebitTransaction("user-1", 3, 7, "  Prompt generation ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-3), tx.Amount)
		assert.Equal(t, int64(7), tx.BalanceAfter)
		assert.Equal(t, int64(10), tx.BalanceBefore())
		assert.Equal(t, int64(3), tx.Magnitude())
		assert.True(t, tx.IsDebit())
		assert.Equal(t, KindDebit, tx.Kind)
		assert.Equal(t, "Prompt generation", tx.Description)
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Credit transaction", func(t *testing.T) {
		tx, err := NewCreditTransaction("user-1", KindPurchase, 50, 57, "Credits added", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(50), tx.Amount)
		assert.False(t, tx.IsDebit())
		assert.Equal(t, int64(7), tx.BalanceBefore())
	})

	t.Run("Credit with debit kind", func(t *testing.T) {
		tx, err := NewCreditTransaction("user-1", KindDebit, 5, 5, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidKind)
		assert.Nil(t, tx)
	})

	t.Run("Sign must match kind", func(t *testing.T) {
		_, err := NewTransaction("user-1", KindDebit, 5, 5, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewTransaction("user-1", KindBonus, -5, 5, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewTransaction("user-1", KindBonus, 0, 5, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative balance after", func(t *testing.T) {
		_, err := NewDebitTransaction("user-1", 5, -1, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := NewTransaction("user-1", TransactionKind("GIFT"), 5, 5, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("Long description is truncated", func(t *testing.T) {
		tx, err := NewCreditTransaction("user-1", KindBonus, 1, 1, strings.Repeat("x", MaxDescriptionLength+20), mockTime)

		require.NoError(t, err)
		assert.Len(t, tx.Description, MaxDescriptionLength)
	})

	t.Run("Multi-byte description is cut on a rune boundary", func(t *testing.T) {
		tx, err := NewCreditTransaction("user-1", KindBonus, 1, 1, strings.Repeat("生", MaxDescriptionLength+100), mockTime)

		require.NoError(t, err)
		assert.True(t, utf8.ValidString(tx.Description))
		assert.Equal(t, MaxDescriptionLength, utf8.RuneCountInString(tx.Description))
	})

	t.Run("Multi-byte description within the limit is kept", func(t *testing.T) {
		// 200 characters, 600 bytes
		description := strings.Repeat("生", 200)
		tx, err := NewCreditTransaction("user-1", KindBonus, 1, 1, description, mockTime)

		require.NoError(t, err)
		assert.Equal(t, description, tx.Description)
	})
}
