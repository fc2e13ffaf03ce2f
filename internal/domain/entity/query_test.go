package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrder(t *testing.T) {
	for _, raw := range []string{"", "desc", "NEWEST", "newest_first"} {
		order, err := ParseSortOrder(raw)
		require.NoError(t, err)
		assert.Equal(t, OrderNewestFirst, order, raw)
	}
	for _, raw := range []string{"asc", "oldest", " Oldest_First "} {
		order, err := ParseSortOrder(raw)
		require.NoError(t, err)
		assert.Equal(t, OrderOldestFirst, order, raw)
	}

	_, err := ParseSortOrder("random")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestListOptionsNormalize(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		opts := ListOptions{}.Normalize(0, 0)
		assert.Equal(t, DefaultPageSize, opts.Limit)
		assert.Equal(t, OrderNewestFirst, opts.Order)
	})

	t.Run("Clamps to max", func(t *testing.T) {
		opts := ListOptions{Limit: 1000, Order: OrderOldestFirst}.Normalize(20, 50)
		assert.Equal(t, 50, opts.Limit)
		assert.Equal(t, OrderOldestFirst, opts.Order)
	})

	t.Run("Keeps cursor", func(t *testing.T) {
		opts := ListOptions{Limit: 5, Cursor: 42}.Normalize(20, 100)
		assert.Equal(t, 5, opts.Limit)
		assert.Equal(t, uint64(42), opts.Cursor)
	})
}
