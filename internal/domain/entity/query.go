package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// SortOrder controls the direction of a history listing
type SortOrder string

// Sort orders
const (
	OrderNewestFirst SortOrder = "newest_first"
	OrderOldestFirst SortOrder = "oldest_first"
)

// Page size bounds used when the caller does not configure their own
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParseSortOrder accepts the API spellings of an order, defaulting to newest first
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "desc", "newest", "newest_first":
		return OrderNewestFirst, nil
	case "asc", "oldest", "oldest_first":
		return OrderOldestFirst, nil
	default:
		return "", fmt.Errorf("%w: unknown order %q", errs.ErrInvalidRequest, raw)
	}
}

// ListOptions bounds a ledger listing.
// Cursor is the ID of the last row already seen; zero starts from the beginning.
type ListOptions struct {
	Limit  int
	Order  SortOrder
	Cursor uint64
}

// Normalize fills defaults and clamps the limit into [1, maxLimit]
func (o ListOptions) Normalize(defaultLimit, maxLimit int) ListOptions {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageSize
	}
	if maxLimit <= 0 {
		maxLimit = MaxPageSize
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.Order == "" {
		o.Order = OrderNewestFirst
	}
	return o
}

// TransactionPage is one page of history.
// NextCursor is the ID to resume after, or zero when this was the last page.
type TransactionPage struct {
	Transactions []*Transaction
	Limit        int
	NextCursor   uint64
}
