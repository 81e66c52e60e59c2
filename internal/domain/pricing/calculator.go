package pricing

import (
	"fmt"
	"math"
)

// Calculator turns a reservation request into an itemized price breakdown.
// It is a pure function of (Rules, Request): no state is kept between calls
// and the same inputs always produce the same breakdown, so a single instance
// is safe for concurrent use.
//
// Malformed input never fails a calculation. Out-of-range numbers are clamped
// or zeroed and unknown ids fall back to the regular tier / direct source;
// Validate reports those problems separately without blocking Calculate.
type Calculator struct {
	rules    *Rules
	tiers    map[string]Tier
	sources  map[string]Source
	reprices map[string]RepriceKind
}

func NewCalculator(rules *Rules) *Calculator {
	if rules == nil {
		rules = DefaultRules()
	}

	tiers := make(map[string]Tier, len(rules.Tiers))
	for _, t := range rules.Tiers {
		tiers[t.ID] = t
	}
	sources := make(map[string]Source, len(rules.Sources))
	for _, s := range rules.Sources {
		sources[s.ID] = s
	}
	reprices := make(map[string]RepriceKind, len(rules.RepriceKinds))
	for _, k := range rules.RepriceKinds {
		reprices[k.Code] = k
	}

	return &Calculator{
		rules:    rules,
		tiers:    tiers,
		sources:  sources,
		reprices: reprices,
	}
}

type Trip struct {
	TourType   string
	Duration   float64
	Passengers int
}

type ExtraServices struct {
	FishingLicenses int
	Amount          float64
}

type Reprice struct {
	Kind  string
	Value float64
}

// Request is a value object built fresh per calculation from form state.
type Request struct {
	Trip     Trip
	TierID   string
	SourceID string
	Extras   ExtraServices
	Reprice  Reprice
}

type BasePriceBreakdown struct {
	BaseTripCost         float64 `json:"baseTripCost"`
	HourlyRate           float64 `json:"hourlyRate"`
	Duration             float64 `json:"duration"`
	Passengers           int     `json:"passengers"`
	ExtraPassengers      int     `json:"extraPassengers"`
	ExtraPassengerCharge float64 `json:"extraPassengerCharge"`
	ExtraPassengerRate   float64 `json:"extraPassengerRate"`
	Subtotal             float64 `json:"subtotal"`
	TierID               string  `json:"pricingTypeId"`
	TierName             string  `json:"pricingTypeName"`
}

type ExtrasBreakdown struct {
	FishingLicenses    int     `json:"fishingLicenses"`
	FishingLicenseCost float64 `json:"fishingLicenseCost"`
	OtherExtras        float64 `json:"otherExtras"`
	Total              float64 `json:"total"`
}

type RepriceBreakdown struct {
	OriginalSubtotal float64 `json:"originalSubtotal"`
	Kind             string  `json:"repriceType"`
	Value            float64 `json:"repriceDiscount"`
	DiscountAmount   float64 `json:"discountedAmount"`
	FinalPrice       float64 `json:"finalPrice"`
}

type FeeBreakdown struct {
	SourceID      string  `json:"sourceId"`
	SourceName    string  `json:"sourceName"`
	TierID        string  `json:"pricingTypeId"`
	HasFee        bool    `json:"hasFee"`
	FeePercentage float64 `json:"feePercentage"`
	FeeAmount     float64 `json:"feeAmount"`
	FeeNote       string  `json:"feeNote,omitempty"`
	TotalCharged  float64 `json:"totalCharged"`
}

// Summary is the flattened view rendered by the quote form and snapshotted
// into saved inquiries.
type Summary struct {
	BasePrice     float64 `json:"basePrice"`
	Extras        float64 `json:"extras"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	BusinessPrice float64 `json:"businessPrice"`
	Fee           float64 `json:"fee"`
	CustomerPrice float64 `json:"customerPrice"`
}

type Breakdown struct {
	Base     BasePriceBreakdown `json:"basePricing"`
	Extras   ExtrasBreakdown    `json:"extrasPricing"`
	Subtotal float64            `json:"subtotal"`
	Reprice  RepriceBreakdown   `json:"reprice"`
	Fee      FeeBreakdown       `json:"fee"`
	Summary  Summary            `json:"summary"`
}

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// BasePrice computes the trip cost before extras, discounts and fees.
// Duration is clamped up to the minimum (the upper bound is only reported by
// Validate) and passengers are clamped into [1, max].
func (c *Calculator) BasePrice(trip Trip, tierID, sourceID string) BasePriceBreakdown {
	tier := c.tierOrDefault(tierID)

	duration := trip.Duration
	if duration <= 0 || math.IsNaN(duration) {
		duration = c.rules.Constants.MinDuration
	}
	if duration < c.rules.Constants.MinDuration {
		duration = c.rules.Constants.MinDuration
	}

	passengers := trip.Passengers
	if passengers < 1 {
		passengers = 1
	}
	if passengers > c.rules.Constants.MaxPassengers {
		passengers = c.rules.Constants.MaxPassengers
	}

	// The override is keyed by the requested tier id, so an unknown tier
	// falls back to the regular rate without picking up a negotiated one.
	hourlyRate := tier.HourlyRate
	if override, ok := c.rules.RateOverrides[sourceID][tierID]; ok {
		hourlyRate = override
	}

	baseTripCost := duration * hourlyRate

	extraPassengers := passengers - c.rules.Constants.IncludedPassengers
	if extraPassengers < 0 {
		extraPassengers = 0
	}
	extraPassengerCharge := float64(extraPassengers) * tier.ExtraPassengerRate

	return BasePriceBreakdown{
		BaseTripCost:         baseTripCost,
		HourlyRate:           hourlyRate,
		Duration:             duration,
		Passengers:           passengers,
		ExtraPassengers:      extraPassengers,
		ExtraPassengerCharge: extraPassengerCharge,
		ExtraPassengerRate:   tier.ExtraPassengerRate,
		Subtotal:             baseTripCost + extraPassengerCharge,
		TierID:               tier.ID,
		TierName:             tier.Name,
	}
}

// Extras prices additional services. Fishing licenses are charged only on
// Fishing tours; a non-zero count on any other tour type is deliberately
// ignored, not an error.
func (c *Calculator) Extras(extras ExtraServices, tourType string) ExtrasBreakdown {
	var breakdown ExtrasBreakdown

	if extras.FishingLicenses > 0 && tourType == TourTypeFishing {
		breakdown.FishingLicenses = extras.FishingLicenses
		breakdown.FishingLicenseCost = float64(extras.FishingLicenses) * c.rules.Constants.FishingLicensePrice
	}

	if extras.Amount > 0 && !math.IsNaN(extras.Amount) {
		breakdown.OtherExtras = extras.Amount
	}

	breakdown.Total = breakdown.FishingLicenseCost + breakdown.OtherExtras
	return breakdown
}

// ApplyReprice applies the discount stage to a subtotal.
//
// Percentage discounts are intentionally not clamped to [0,100]: a value over
// 100 inverts the sign of the final price. Fixed-amount discounts are clamped
// to the subtotal so the result never goes negative. Fixed-price and coupon
// kinds replace the final price outright and report a discount amount of 0.
func (c *Calculator) ApplyReprice(subtotal float64, kind string, value float64) RepriceBreakdown {
	if math.IsNaN(value) {
		value = 0
	}

	breakdown := RepriceBreakdown{
		OriginalSubtotal: subtotal,
		Kind:             kind,
		Value:            value,
		FinalPrice:       subtotal,
	}

	if kind == RepriceNone || value == 0 {
		return breakdown
	}

	switch kind {
	case RepricePercentage:
		breakdown.DiscountAmount = subtotal * (value / 100)
		breakdown.FinalPrice = subtotal - breakdown.DiscountAmount

	case RepriceFixedAmount:
		breakdown.DiscountAmount = math.Min(value, subtotal)
		breakdown.FinalPrice = subtotal - breakdown.DiscountAmount

	case RepriceFixedPrice, RepriceCoupon:
		breakdown.FinalPrice = value

	default:
		// Unknown kind: no discount. Validate reports it.
		breakdown.FinalPrice = subtotal
	}

	return breakdown
}

// EffectiveFee resolves the fee config for a (source, tier) pair: a specific
// fee rule wins over the source's default.
func (c *Calculator) EffectiveFee(sourceID, tierID string) (FeeRule, string) {
	if rule, ok := c.rules.FeeRules[sourceID][tierID]; ok {
		note := ""
		if rule.HasFee {
			note = fmt.Sprintf("%.1f%% fee", rule.FeePercentage*100)
		}
		return rule, note
	}

	source := c.sourceOrDefault(sourceID)
	return FeeRule{HasFee: source.HasFee, FeePercentage: source.FeePercentage}, source.FeeNote
}

// SourceFee adds the booking-source fee on top of the business price.
//
// The business price is the net amount the operator must receive after the
// fee is taken out of what the customer pays, so the fee is grossed up:
//
//	customerPrice = businessPrice / (1 - feePercentage)
//	feeAmount     = customerPrice - businessPrice
//
// This is not the same as businessPrice * (1 + feePercentage).
func (c *Calculator) SourceFee(businessPrice float64, sourceID, tierID string) FeeBreakdown {
	source := c.sourceOrDefault(sourceID)
	fee, note := c.EffectiveFee(sourceID, tierID)

	breakdown := FeeBreakdown{
		SourceID:      source.ID,
		SourceName:    source.Name,
		TierID:        tierID,
		HasFee:        fee.HasFee,
		FeePercentage: fee.FeePercentage,
		FeeNote:       note,
		TotalCharged:  businessPrice,
	}

	if fee.HasFee {
		breakdown.TotalCharged = businessPrice / (1 - fee.FeePercentage)
		breakdown.FeeAmount = breakdown.TotalCharged - businessPrice
	}

	return breakdown
}

// Calculate runs the full pipeline in fixed order: base price, extras,
// subtotal, reprice, then the source fee applied to the post-discount
// business price.
func (c *Calculator) Calculate(req Request) Breakdown {
	tierID := req.TierID
	if tierID == "" {
		tierID = DefaultTierID
	}

	base := c.BasePrice(req.Trip, tierID, req.SourceID)
	extras := c.Extras(req.Extras, req.Trip.TourType)
	subtotal := base.Subtotal + extras.Total
	reprice := c.ApplyReprice(subtotal, req.Reprice.Kind, req.Reprice.Value)
	fee := c.SourceFee(reprice.FinalPrice, req.SourceID, tierID)

	return Breakdown{
		Base:     base,
		Extras:   extras,
		Subtotal: subtotal,
		Reprice:  reprice,
		Fee:      fee,
		Summary: Summary{
			BasePrice:     base.Subtotal,
			Extras:        extras.Total,
			Subtotal:      subtotal,
			Discount:      reprice.DiscountAmount,
			BusinessPrice: reprice.FinalPrice,
			Fee:           fee.FeeAmount,
			CustomerPrice: fee.TotalCharged,
		},
	}
}

// Validate reports advisory problems with a request. It never mutates or
// clamps anything and it never stops Calculate from running; the quote form
// shows both results side by side.
func (c *Calculator) Validate(req Request) ValidationResult {
	var errors []string

	cons := c.rules.Constants
	if req.Trip.Duration < cons.MinDuration {
		errors = append(errors, fmt.Sprintf("Duration must be at least %g hours", cons.MinDuration))
	}
	if req.Trip.Duration > cons.MaxDuration {
		errors = append(errors, fmt.Sprintf("Duration cannot exceed %g hours", cons.MaxDuration))
	}
	if req.Trip.Passengers < 1 {
		errors = append(errors, "At least 1 adult is required")
	}
	if req.Trip.Passengers > cons.MaxPassengers {
		errors = append(errors, fmt.Sprintf("Maximum %d passengers allowed", cons.MaxPassengers))
	}

	if req.TierID != "" {
		if _, ok := c.tiers[req.TierID]; !ok {
			errors = append(errors, "Invalid pricing type")
		}
	}
	if req.SourceID != "" {
		if _, ok := c.sources[req.SourceID]; !ok {
			errors = append(errors, "Invalid booking source")
		}
	}
	if req.Reprice.Kind != "" {
		if _, ok := c.reprices[req.Reprice.Kind]; !ok {
			errors = append(errors, "Invalid reprice type")
		}
	}

	return ValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

func (c *Calculator) Rules() *Rules {
	return c.rules
}

func (c *Calculator) TierByID(id string) (Tier, bool) {
	t, ok := c.tiers[id]
	return t, ok
}

func (c *Calculator) SourceByID(id string) (Source, bool) {
	s, ok := c.sources[id]
	return s, ok
}

func (c *Calculator) tierOrDefault(id string) Tier {
	if t, ok := c.tiers[id]; ok {
		return t
	}
	return c.tiers[DefaultTierID]
}

func (c *Calculator) sourceOrDefault(id string) Source {
	if s, ok := c.sources[id]; ok {
		return s
	}
	return c.sources[DefaultSourceID]
}
