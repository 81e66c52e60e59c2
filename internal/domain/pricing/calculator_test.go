//go:build unit

package pricing_test

import (
	"testing"

	"boat-quotes/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func newCalc(t *testing.T) *pricing.Calculator {
	t.Helper()
	return pricing.NewCalculator(pricing.DefaultRules())
}

func TestCalculate_Scenarios(t *testing.T) {
	calc := newCalc(t)

	t.Run("regular tier, direct source, no extras, no discount", func(t *testing.T) {
		got := calc.Calculate(pricing.Request{
			Trip:     pricing.Trip{TourType: "Bay Trip", Duration: 3, Passengers: 14},
			TierID:   "regular",
			SourceID: "direct",
		})

		assert.InDelta(t, 1800, got.Base.BaseTripCost, delta)
		assert.Equal(t, 0, got.Base.ExtraPassengers)
		assert.InDelta(t, 1800, got.Summary.Subtotal, delta)
		assert.InDelta(t, 1800, got.Summary.BusinessPrice, delta)
		assert.InDelta(t, 1800, got.Summary.CustomerPrice, delta)
		assert.InDelta(t, 0, got.Summary.Fee, delta)
	})

	t.Run("get-my-boat uses negotiated rate and grossed-up fee", func(t *testing.T) {
		got := calc.Calculate(pricing.Request{
			Trip:     pricing.Trip{TourType: "Bay Trip", Duration: 3, Passengers: 14},
			TierID:   "regular",
			SourceID: "get-my-boat",
		})

		assert.InDelta(t, 500, got.Base.HourlyRate, delta)
		assert.InDelta(t, 1500, got.Base.BaseTripCost, delta)
		assert.InDelta(t, 1500, got.Summary.BusinessPrice, delta)
		// 11.5% fee grossed up: 1500 / 0.885
		assert.InDelta(t, 1694.9152542372883, got.Summary.CustomerPrice, 1e-6)
		assert.InDelta(t, 194.9152542372883, got.Summary.Fee, 1e-6)
	})

	t.Run("fishing extras and percentage discount", func(t *testing.T) {
		got := calc.Calculate(pricing.Request{
			Trip:     pricing.Trip{TourType: "Fishing", Duration: 4, Passengers: 20},
			TierID:   "regular",
			SourceID: "direct",
			Extras:   pricing.ExtraServices{FishingLicenses: 2, Amount: 50},
			Reprice:  pricing.Reprice{Kind: pricing.RepricePercentage, Value: 10},
		})

		assert.InDelta(t, 2400, got.Base.BaseTripCost, delta)
		assert.Equal(t, 6, got.Base.ExtraPassengers)
		assert.InDelta(t, 600, got.Base.ExtraPassengerCharge, delta)
		assert.InDelta(t, 44, got.Extras.FishingLicenseCost, delta)
		assert.InDelta(t, 94, got.Extras.Total, delta)
		assert.InDelta(t, 3094, got.Summary.Subtotal, delta)
		assert.InDelta(t, 309.4, got.Summary.Discount, 1e-6)
		assert.InDelta(t, 2784.6, got.Summary.BusinessPrice, 1e-6)
		assert.InDelta(t, 2784.6, got.Summary.CustomerPrice, 1e-6)
	})

	t.Run("fixed price override replaces the business price", func(t *testing.T) {
		got := calc.ApplyReprice(1000, pricing.RepriceFixedPrice, 750)

		assert.InDelta(t, 750, got.FinalPrice, delta)
		// Override convention: the discount amount stays 0.
		assert.InDelta(t, 0, got.DiscountAmount, delta)
	})
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := newCalc(t)

	req := pricing.Request{
		Trip:     pricing.Trip{TourType: "Fishing", Duration: 5, Passengers: 22},
		TierID:   "snack",
		SourceID: "viator",
		Extras:   pricing.ExtraServices{FishingLicenses: 3, Amount: 120.5},
		Reprice:  pricing.Reprice{Kind: pricing.RepriceFixedAmount, Value: 80},
	}

	first := calc.Calculate(req)
	second := calc.Calculate(req)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Calculate is not deterministic (-first +second):\n%s", diff)
	}
}

func TestBasePrice_Boundaries(t *testing.T) {
	calc := newCalc(t)

	cases := []struct {
		name           string
		trip           pricing.Trip
		wantDuration   float64
		wantPassengers int
	}{
		{
			name:           "duration below minimum is clamped up",
			trip:           pricing.Trip{Duration: 1, Passengers: 10},
			wantDuration:   2,
			wantPassengers: 10,
		},
		{
			name:           "zero duration falls back to minimum",
			trip:           pricing.Trip{Duration: 0, Passengers: 10},
			wantDuration:   2,
			wantPassengers: 10,
		},
		{
			name:           "duration above maximum is not clamped here",
			trip:           pricing.Trip{Duration: 12, Passengers: 10},
			wantDuration:   12,
			wantPassengers: 10,
		},
		{
			name:           "passengers above maximum are clamped down",
			trip:           pricing.Trip{Duration: 3, Passengers: 80},
			wantDuration:   3,
			wantPassengers: 50,
		},
		{
			name:           "zero passengers defaults to one",
			trip:           pricing.Trip{Duration: 3, Passengers: 0},
			wantDuration:   3,
			wantPassengers: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.BasePrice(tc.trip, "regular", "direct")
			assert.InDelta(t, tc.wantDuration, got.Duration, delta)
			assert.Equal(t, tc.wantPassengers, got.Passengers)
			assert.GreaterOrEqual(t, got.ExtraPassengers, 0)
		})
	}
}

func TestBasePrice_UnknownIDsFallBack(t *testing.T) {
	calc := newCalc(t)

	got := calc.BasePrice(pricing.Trip{Duration: 3, Passengers: 10}, "no-such-tier", "no-such-source")

	assert.Equal(t, "regular", got.TierID)
	assert.InDelta(t, 600, got.HourlyRate, delta)

	t.Run("unknown tier does not pick up a negotiated rate", func(t *testing.T) {
		got := calc.BasePrice(pricing.Trip{Duration: 3, Passengers: 10}, "no-such-tier", "get-my-boat")

		// get-my-boat negotiates $500/hr for the regular tier only; the
		// fallback keeps the regular rate.
		assert.Equal(t, "regular", got.TierID)
		assert.InDelta(t, 600, got.HourlyRate, delta)
	})
}

func TestExtras_FishingGate(t *testing.T) {
	calc := newCalc(t)

	cases := []struct {
		name     string
		tourType string
		extras   pricing.ExtraServices
		wantCost float64
	}{
		{name: "licenses charged on fishing tour", tourType: "Fishing", extras: pricing.ExtraServices{FishingLicenses: 2}, wantCost: 44},
		{name: "licenses ignored on bay trip", tourType: "Bay Trip", extras: pricing.ExtraServices{FishingLicenses: 2}, wantCost: 0},
		{name: "licenses ignored on empty tour type", tourType: "", extras: pricing.ExtraServices{FishingLicenses: 5}, wantCost: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Extras(tc.extras, tc.tourType)
			assert.InDelta(t, tc.wantCost, got.FishingLicenseCost, delta)
		})
	}

	t.Run("negative other extras coerced to zero", func(t *testing.T) {
		got := calc.Extras(pricing.ExtraServices{Amount: -30}, "Bay Trip")
		assert.InDelta(t, 0, got.OtherExtras, delta)
	})
}

func TestApplyReprice(t *testing.T) {
	calc := newCalc(t)

	t.Run("fixed amount never drives the price below zero", func(t *testing.T) {
		got := calc.ApplyReprice(100, pricing.RepriceFixedAmount, 250)
		assert.InDelta(t, 100, got.DiscountAmount, delta)
		assert.InDelta(t, 0, got.FinalPrice, delta)
	})

	t.Run("percentage over 100 is not clamped", func(t *testing.T) {
		// Known asymmetry against the fixed-amount clamp, preserved on
		// purpose: the discount contract leaves percentages unbounded.
		got := calc.ApplyReprice(100, pricing.RepricePercentage, 150)
		assert.InDelta(t, 150, got.DiscountAmount, delta)
		assert.InDelta(t, -50, got.FinalPrice, delta)
	})

	t.Run("zero value is a no-op", func(t *testing.T) {
		got := calc.ApplyReprice(500, pricing.RepricePercentage, 0)
		assert.InDelta(t, 500, got.FinalPrice, delta)
		assert.InDelta(t, 0, got.DiscountAmount, delta)
	})

	t.Run("unknown kind leaves the subtotal untouched", func(t *testing.T) {
		got := calc.ApplyReprice(500, "??", 100)
		assert.InDelta(t, 500, got.FinalPrice, delta)
	})

	t.Run("coupon behaves like fixed price", func(t *testing.T) {
		fixed := calc.ApplyReprice(900, pricing.RepriceFixedPrice, 640)
		coupon := calc.ApplyReprice(900, pricing.RepriceCoupon, 640)
		assert.InDelta(t, fixed.FinalPrice, coupon.FinalPrice, delta)
		assert.InDelta(t, fixed.DiscountAmount, coupon.DiscountAmount, delta)
	})
}

func TestSourceFee_RoundTrip(t *testing.T) {
	calc := newCalc(t)

	cases := []struct {
		name     string
		sourceID string
		tierID   string
		wantPct  float64
	}{
		{name: "get-my-boat regular", sourceID: "get-my-boat", tierID: "regular", wantPct: 0.115},
		{name: "viator snack", sourceID: "viator", tierID: "snack", wantPct: 0.15},
		{name: "fareharbor regular", sourceID: "fareharbor", tierID: "regular", wantPct: 0.12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			business := 1234.56
			got := calc.SourceFee(business, tc.sourceID, tc.tierID)

			require.True(t, got.HasFee)
			assert.InDelta(t, tc.wantPct, got.FeePercentage, delta)
			// customer * (1 - p) must give back the business price
			assert.InDelta(t, business, got.TotalCharged*(1-got.FeePercentage), 1e-6)
			assert.InDelta(t, got.TotalCharged-business, got.FeeAmount, delta)
		})
	}

	t.Run("no fee passes the business price through", func(t *testing.T) {
		got := calc.SourceFee(1800, "direct", "regular")
		assert.False(t, got.HasFee)
		assert.InDelta(t, 1800, got.TotalCharged, delta)
		assert.InDelta(t, 0, got.FeeAmount, delta)
	})

	t.Run("unknown source falls back to direct", func(t *testing.T) {
		got := calc.SourceFee(1800, "no-such-source", "regular")
		assert.Equal(t, "direct", got.SourceID)
		assert.False(t, got.HasFee)
	})
}

func TestEffectiveFee_OverridePrecedence(t *testing.T) {
	rules := pricing.DefaultRules()
	// Give one source a default fee that differs from its per-tier rule so
	// the precedence is observable.
	rules.FeeRules["viator"] = map[string]pricing.FeeRule{
		"regular": {HasFee: true, FeePercentage: 0.2},
	}
	calc := pricing.NewCalculator(rules)

	withRule, _ := calc.EffectiveFee("viator", "regular")
	assert.InDelta(t, 0.2, withRule.FeePercentage, delta)

	// No rule for the snack tier: the source default applies.
	fallback, _ := calc.EffectiveFee("viator", "snack")
	assert.InDelta(t, 0.15, fallback.FeePercentage, delta)
}

func TestValidate(t *testing.T) {
	calc := newCalc(t)

	t.Run("valid request has no errors", func(t *testing.T) {
		got := calc.Validate(pricing.Request{
			Trip:     pricing.Trip{TourType: "Bay Trip", Duration: 3, Passengers: 14},
			TierID:   "regular",
			SourceID: "direct",
		})
		assert.True(t, got.IsValid)
		assert.Empty(t, got.Errors)
	})

	cases := []struct {
		name    string
		req     pricing.Request
		wantMsg string
	}{
		{
			name:    "duration too short",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 1, Passengers: 10}},
			wantMsg: "Duration must be at least 2 hours",
		},
		{
			name:    "duration too long",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 9, Passengers: 10}},
			wantMsg: "Duration cannot exceed 8 hours",
		},
		{
			name:    "no passengers",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 3, Passengers: 0}},
			wantMsg: "At least 1 adult is required",
		},
		{
			name:    "too many passengers",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 3, Passengers: 51}},
			wantMsg: "Maximum 50 passengers allowed",
		},
		{
			name:    "unknown pricing type",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 3, Passengers: 10}, TierID: "platinum"},
			wantMsg: "Invalid pricing type",
		},
		{
			name:    "unknown booking source",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 3, Passengers: 10}, SourceID: "craigslist"},
			wantMsg: "Invalid booking source",
		},
		{
			name:    "unknown reprice type",
			req:     pricing.Request{Trip: pricing.Trip{Duration: 3, Passengers: 10}, Reprice: pricing.Reprice{Kind: "!!", Value: 5}},
			wantMsg: "Invalid reprice type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Validate(tc.req)
			assert.False(t, got.IsValid)
			assert.Contains(t, got.Errors, tc.wantMsg)
		})
	}

	t.Run("invalid request still calculates", func(t *testing.T) {
		req := pricing.Request{
			Trip:     pricing.Trip{Duration: 20, Passengers: 99},
			TierID:   "platinum",
			SourceID: "craigslist",
		}
		validation := calc.Validate(req)
		require.False(t, validation.IsValid)

		got := calc.Calculate(req)
		assert.Greater(t, got.Summary.CustomerPrice, 0.0)
	})
}
