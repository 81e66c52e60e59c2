package commands

import (
	"context"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/pkg/errs"
	"boat-quotes/internal/usecase/queries"
)

// DraftStore is the write-side port for the autosaved form snapshot. The
// store applies the retention TTL; an expired draft simply disappears.
type DraftStore interface {
	Save(ctx context.Context, draft *queries.DraftView) error
	Clear(ctx context.Context) error
}

type SaveDraftParams struct {
	Customer inquiry.Customer
	Trip     inquiry.TripDetails
	Pricing  inquiry.PricingSelection
	Notes    string
}

type DraftCommands interface {
	// Save snapshots in-progress form state, recomputing the pricing summary
	// so a restored draft shows current numbers.
	Save(ctx context.Context, params SaveDraftParams) (*queries.DraftView, error)
	Clear(ctx context.Context) error
}

type draftCommandsImpl struct {
	store DraftStore
	calc  *pricing.Calculator
	clock clock.Clock
}

func NewDraftCommands(store DraftStore, calc *pricing.Calculator, clk clock.Clock) DraftCommands {
	return &draftCommandsImpl{store: store, calc: calc, clock: clk}
}

func (c *draftCommandsImpl) Save(ctx context.Context, params SaveDraftParams) (*queries.DraftView, error) {
	result := c.calc.Calculate(params.Pricing.ToRequest(params.Trip)).Summary

	draft := &queries.DraftView{
		Customer: params.Customer,
		Trip:     params.Trip,
		Pricing:  params.Pricing,
		Notes:    params.Notes,
		Result:   &result,
		SavedAt:  c.clock.Now(),
	}

	if err := c.store.Save(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to save draft")
	}
	return draft, nil
}

func (c *draftCommandsImpl) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return errs.Wrap(err, "failed to clear draft")
	}
	return nil
}
