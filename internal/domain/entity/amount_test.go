package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreditAmount(t *testing.T) {
	assert.NoError(t, ValidateCreditAmount(1))
	assert.NoError(t, ValidateCreditAmount(MaxCreditAmount))
	assert.ErrorIs(t, ValidateCreditAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateCreditAmount(-5), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateCreditAmount(MaxCreditAmount+1), errs.ErrAmountOverflow)
}

func TestParseCreditAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := map[string]int64{
			"1":     1,
			" 25 ":  25,
			"+7":    7,
			"00012": 12,
		}
		for input, expected := range testCases {
			value, err := ParseCreditAmount(input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, value, input)
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0", "-3", "1.5", "2e3", "1,000"} {
			_, err := ParseCreditAmount(input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, input)
		}
	})

	t.Run("Overflowing amounts", func(t *testing.T) {
		for _, input := range []string{"99999999999999999999", "1000000001"} {
			_, err := ParseCreditAmount(input)
			assert.ErrorIs(t, err, errs.ErrAmountOverflow, input)
		}
	})
}

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), sum)

	diff, err := CheckedAdd(10, -15)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), diff)

	_, err = CheckedAdd(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = CheckedAdd(math.MinInt64, -1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}
