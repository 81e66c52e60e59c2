package request

import (
	"boat-quotes/internal/domain/pricing"
)

// QuoteRequest mirrors the quote form. Numeric-looking fields that the form
// renders as text inputs (discount, extras amount, license count) arrive as
// strings and are coerced; garbage coerces to zero rather than failing the
// request.
type QuoteRequest struct {
	TourType    string       `json:"tourType"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Duration    float64      `json:"duration"`
	Passengers  int          `json:"passengers"`
	PricingType string       `json:"pricingType"`
	Source      string       `json:"source"`
	Extras      QuoteExtras  `json:"extras"`
	Reprice     QuoteReprice `json:"reprice"`
}

type QuoteExtras struct {
	FishingLicenses string `json:"fishingLicenses"`
	Amount          string `json:"amount"`
}

type QuoteReprice struct {
	Type     string `json:"type"`
	Discount string `json:"discount"`
}

func (r QuoteRequest) ToDomain() pricing.Request {
	return pricing.Request{
		Trip: pricing.Trip{
			TourType:   r.TourType,
			Duration:   r.Duration,
			Passengers: r.Passengers,
		},
		TierID:   r.PricingType,
		SourceID: r.Source,
		Extras: pricing.ExtraServices{
			FishingLicenses: pricing.ParseCount(r.Extras.FishingLicenses),
			Amount:          pricing.ParseAmount(r.Extras.Amount),
		},
		Reprice: pricing.Reprice{
			Kind:  r.Reprice.Type,
			Value: pricing.ParseAmount(r.Reprice.Discount),
		},
	}
}
