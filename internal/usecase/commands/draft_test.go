//go:build unit

package commands_test

import (
	"context"
	"testing"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"
	commandsmock "boat-quotes/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDraftCommands_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockDraftStore(ctrl)
	cmds := commands.NewDraftCommands(store, pricing.NewCalculator(nil), clock.NewFixedClock(testNow))

	var stored *queries.DraftView
	store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *queries.DraftView) error {
			stored = draft
			return nil
		}).Times(1)

	draft, err := cmds.Save(context.Background(), commands.SaveDraftParams{
		Customer: inquiry.Customer{Name: "Maria"},
		Trip:     inquiry.TripDetails{TourType: "Bay Trip", Duration: 2, Passengers: 8},
		Pricing:  inquiry.PricingSelection{TierID: "snack", SourceID: "direct"},
		Notes:    "half day",
	})
	require.NoError(t, err)

	assert.Same(t, stored, draft)
	assert.Equal(t, testNow, draft.SavedAt)

	// The snapshot carries a freshly computed summary: 2h * $450.
	require.NotNil(t, draft.Result)
	assert.InDelta(t, 900, draft.Result.CustomerPrice, 1e-9)
}

func TestDraftCommands_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockDraftStore(ctrl)
	cmds := commands.NewDraftCommands(store, pricing.NewCalculator(nil), clock.NewFixedClock(testNow))

	store.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)
	require.NoError(t, cmds.Clear(context.Background()))
}
