//go:build unit

package repository

import (
	"testing"

	"boat-quotes/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	cases := []struct {
		name string
		key  queries.SortKey
		want string
	}{
		{name: "default sorts by last update", key: queries.SortUpdated, want: "updated_at DESC"},
		{name: "date sorts by save time, newest first", key: queries.SortDate, want: "created_at DESC"},
		{name: "dateAsc sorts by save time, oldest first", key: queries.SortDateAsc, want: "created_at ASC"},
		{name: "customer sorts by name", key: queries.SortCustomer, want: "customer->>'name' ASC"},
		{name: "price sorts by customer price", key: queries.SortPrice, want: "(result->>'customerPrice')::numeric DESC"},
		{name: "unknown key falls back to last update", key: queries.SortKey("bogus"), want: "updated_at DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.key))
		})
	}
}
