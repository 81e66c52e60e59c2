package queries

import (
	"boat-quotes/internal/domain/pricing"
)

// QuoteView bundles the itemized breakdown with the advisory validation and
// display-ready strings. Validation never suppresses the breakdown; the form
// shows both.
type QuoteView struct {
	Breakdown  pricing.Breakdown        `json:"breakdown"`
	Validation pricing.ValidationResult `json:"validation"`
	Formatted  FormattedSummary         `json:"formatted"`
}

type FormattedSummary struct {
	BasePrice     string `json:"basePrice"`
	Extras        string `json:"extras"`
	Subtotal      string `json:"subtotal"`
	Discount      string `json:"discount"`
	BusinessPrice string `json:"businessPrice"`
	Fee           string `json:"fee"`
	CustomerPrice string `json:"customerPrice"`
}

// RuleSetView exposes the active rule table to clients so the quote form can
// render its selectors from the same data the calculator runs on.
type RuleSetView struct {
	Version      string                `json:"version"`
	LastUpdated  string                `json:"lastUpdated,omitempty"`
	Constants    pricing.Constants     `json:"constants"`
	Tiers        []pricing.Tier        `json:"pricingTypes"`
	Sources      []pricing.Source      `json:"sources"`
	TourTypes    []string              `json:"tourTypes"`
	RepriceKinds []pricing.RepriceKind `json:"repriceTypes"`
}

type PricingQueries interface {
	Quote(req pricing.Request) *QuoteView
	RuleSet() *RuleSetView
}

type pricingQueriesImpl struct {
	calc *pricing.Calculator
}

func NewPricingQueries(calc *pricing.Calculator) PricingQueries {
	return &pricingQueriesImpl{calc: calc}
}

func (q *pricingQueriesImpl) Quote(req pricing.Request) *QuoteView {
	breakdown := q.calc.Calculate(req)
	return &QuoteView{
		Breakdown:  breakdown,
		Validation: q.calc.Validate(req),
		Formatted:  formatSummary(breakdown.Summary),
	}
}

func (q *pricingQueriesImpl) RuleSet() *RuleSetView {
	rules := q.calc.Rules()
	return &RuleSetView{
		Version:      rules.Version,
		LastUpdated:  rules.LastUpdated,
		Constants:    rules.Constants,
		Tiers:        rules.Tiers,
		Sources:      rules.Sources,
		TourTypes:    rules.TourTypes,
		RepriceKinds: rules.RepriceKinds,
	}
}

func formatSummary(s pricing.Summary) FormattedSummary {
	return FormattedSummary{
		BasePrice:     pricing.FormatUSD(s.BasePrice),
		Extras:        pricing.FormatUSD(s.Extras),
		Subtotal:      pricing.FormatUSD(s.Subtotal),
		Discount:      pricing.FormatUSD(s.Discount),
		BusinessPrice: pricing.FormatUSD(s.BusinessPrice),
		Fee:           pricing.FormatUSD(s.Fee),
		CustomerPrice: pricing.FormatUSD(s.CustomerPrice),
	}
}
