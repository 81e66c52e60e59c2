package inquiry

import (
	"boat-quotes/internal/domain/pricing"
)

// Customer, TripDetails and PricingSelection are the document-shaped pieces
// of an inquiry. They are stored as-is and echoed back to the form, so the
// JSON field names are part of the stored format.

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

type TripDetails struct {
	TourType   string  `json:"tourType"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Duration   float64 `json:"duration"`
	Passengers int     `json:"passengers"`
}

type ExtraSelection struct {
	FishingLicenses int     `json:"fishingLicenses"`
	Amount          float64 `json:"amount"`
}

type RepriceSelection struct {
	Kind  string  `json:"type"`
	Value float64 `json:"discount"`
}

type PricingSelection struct {
	TierID   string           `json:"pricingType"`
	SourceID string           `json:"source"`
	Extras   ExtraSelection   `json:"extras"`
	Reprice  RepriceSelection `json:"reprice"`
}

// ToRequest assembles the calculation request for this selection and trip.
func (p PricingSelection) ToRequest(trip TripDetails) pricing.Request {
	return pricing.Request{
		Trip: pricing.Trip{
			TourType:   trip.TourType,
			Duration:   trip.Duration,
			Passengers: trip.Passengers,
		},
		TierID:   p.TierID,
		SourceID: p.SourceID,
		Extras: pricing.ExtraServices{
			FishingLicenses: p.Extras.FishingLicenses,
			Amount:          p.Extras.Amount,
		},
		Reprice: pricing.Reprice{
			Kind:  p.Reprice.Kind,
			Value: p.Reprice.Value,
		},
	}
}
