package response

import (
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	Breakdown  pricing.Breakdown        `json:"breakdown"`
	Validation pricing.ValidationResult `json:"validation"`
	Formatted  queries.FormattedSummary `json:"formatted"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type RuleSetResponse struct {
	Version      string                `json:"version"`
	LastUpdated  string                `json:"lastUpdated,omitempty"`
	Constants    pricing.Constants     `json:"constants"`
	Tiers        []pricing.Tier        `json:"pricingTypes"`
	Sources      []pricing.Source      `json:"sources"`
	TourTypes    []string              `json:"tourTypes"`
	RepriceKinds []pricing.RepriceKind `json:"repriceTypes"`
}

func FromRuleSetView(v *queries.RuleSetView) *RuleSetResponse {
	var resp RuleSetResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
