package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// MaxIdempotencyKeyLength bounds client supplied keys
const MaxIdempotencyKeyLength = 255

// IdempotencyStatus tracks whether a keyed request has finished
type IdempotencyStatus string

const (
	IdempotencyPending   IdempotencyStatus = "pending"
	IdempotencyCompleted IdempotencyStatus = "completed"
)

// IdempotencyRecord is what is stored under an idempotency key
type IdempotencyRecord struct {
	Token       string            `json:"token"`
	Fingerprint string            `json:"fingerprint"`
	Status      IdempotencyStatus `json:"status"`
	Result      *MutationResult   `json:"result,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// NewPendingIdempotencyRecord creates the reservation written before the request runs
func NewPendingIdempotencyRecord(token, fingerprint string, timeProvider coreport.TimeProvider) *IdempotencyRecord {
	return &IdempotencyRecord{
		Token:       token,
		Fingerprint: fingerprint,
		Status:      IdempotencyPending,
		CreatedAt:   timeProvider.Now(),
	}
}

// Complete attaches the final result
func (r *IdempotencyRecord) Complete(result MutationResult) {
	r.Status = IdempotencyCompleted
	r.Result = &result
}

// IsCompleted reports whether a result is available for replay
func (r *IdempotencyRecord) IsCompleted() bool {
	return r.Status == IdempotencyCompleted && r.Result != nil
}

// SpendFingerprint identifies the body of a spend request so a reused key with a different body can be detected
func SpendFingerprint(amount int64, description string) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(amount, 10) + "\x00" + description))
	return hex.EncodeToString(sum[:])
}

// ValidateIdempotencyKey checks a client supplied key
func ValidateIdempotencyKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty idempotency key", errs.ErrInvalidRequest)
	}
	if len(key) > MaxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key longer than %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}
	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: idempotency key contains whitespace or control characters", errs.ErrInvalidRequest)
		}
	}
	return nil
}
