//go:build unit

package draftstore_test

import (
	"context"
	"testing"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/infra/draftstore"
	"boat-quotes/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, retention time.Duration) (*draftstore.DraftStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return draftstore.NewDraftStore(client, retention), mr
}

func testDraft() *queries.DraftView {
	result := pricing.Summary{Subtotal: 2400, BusinessPrice: 2400, CustomerPrice: 2400}
	return &queries.DraftView{
		Customer: inquiry.Customer{Name: "Maria Lopez", Email: "maria@example.com"},
		Trip:     inquiry.TripDetails{TourType: "Bay Trip", Duration: 4, Passengers: 10},
		Pricing:  inquiry.PricingSelection{TierID: "regular", SourceID: "direct"},
		Notes:    "window seat",
		Result:   &result,
		SavedAt:  time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestDraftStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDraft()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, testDraft(), loaded)
}

func TestDraftStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDraftStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	first := testDraft()
	require.NoError(t, store.Save(ctx, first))

	second := testDraft()
	second.Notes = "changed plans"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "changed plans", loaded.Notes)
}

func TestDraftStore_RetentionExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDraft()))

	mr.FastForward(time.Hour + time.Minute)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDraftStore_Clear(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDraft()))
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear(ctx))
}
