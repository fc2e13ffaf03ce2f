package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// MaxCreditAmount caps a single debit or credit so balance arithmetic cannot overflow int64
const MaxCreditAmount int64 = 1_000_000_000

// ValidateCreditAmount checks that amount is a positive whole number of credits within bounds
func ValidateCreditAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	if amount > MaxCreditAmount {
		return fmt.Errorf("%w: maximum %d credits per operation", errs.ErrAmountOverflow, MaxCreditAmount)
	}
	return nil
}

// ParseCreditAmount parses a decimal string such as a query parameter into a credit amount.
// Fractional values are rejected; credits are indivisible.
func ParseCreditAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(raw, "+") {
		raw = raw[1:]
	}
	if strings.ContainsAny(raw, ".eE") {
		return 0, fmt.Errorf("%w: fractional credits are not supported", errs.ErrInvalidAmount)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if err := ValidateCreditAmount(value); err != nil {
		return 0, err
	}
	return value, nil
}

// CheckedAdd adds delta to balance and reports overflow instead of wrapping
func CheckedAdd(balance, delta int64) (int64, error) {
	if delta > 0 && balance > math.MaxInt64-delta {
		return 0, errs.ErrAmountOverflow
	}
	if delta < 0 && balance < math.MinInt64-delta {
		return 0, errs.ErrAmountOverflow
	}
	return balance + delta, nil
}
