package request

import (
	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/usecase/commands"
)

type CustomerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

type TripPayload struct {
	TourType   string  `json:"tourType" binding:"required"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Duration   float64 `json:"duration"`
	Passengers int     `json:"passengers"`
}

type ExtrasPayload struct {
	FishingLicenses int     `json:"fishingLicenses"`
	Amount          float64 `json:"amount"`
}

type RepricePayload struct {
	Type     string  `json:"type"`
	Discount float64 `json:"discount"`
}

type PricingPayload struct {
	PricingType string         `json:"pricingType"`
	Source      string         `json:"source"`
	Extras      ExtrasPayload  `json:"extras"`
	Reprice     RepricePayload `json:"reprice"`
}

type CreateInquiryRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
	Trip     TripPayload     `json:"trip" binding:"required"`
	Pricing  PricingPayload  `json:"pricing"`
	Notes    string          `json:"notes"`
	Tags     []string        `json:"tags"`
}

func (r CreateInquiryRequest) ToParams() commands.CreateInquiryParams {
	return commands.CreateInquiryParams{
		Customer: r.Customer.toDomain(),
		Trip:     r.Trip.toDomain(),
		Pricing:  r.Pricing.toDomain(),
		Notes:    r.Notes,
		Tags:     r.Tags,
	}
}

// Update payloads carry pointers so an omitted field keeps its stored value.

type CustomerPatchPayload struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Language *string `json:"language"`
}

type TripPatchPayload struct {
	TourType   *string  `json:"tourType"`
	Date       *string  `json:"date"`
	Time       *string  `json:"time"`
	Duration   *float64 `json:"duration"`
	Passengers *int     `json:"passengers"`
}

type ExtrasPatchPayload struct {
	FishingLicenses *int     `json:"fishingLicenses"`
	Amount          *float64 `json:"amount"`
}

type RepricePatchPayload struct {
	Type     *string  `json:"type"`
	Discount *float64 `json:"discount"`
}

type PricingPatchPayload struct {
	PricingType *string             `json:"pricingType"`
	Source      *string             `json:"source"`
	Extras      ExtrasPatchPayload  `json:"extras"`
	Reprice     RepricePatchPayload `json:"reprice"`
}

type UpdateInquiryRequest struct {
	Customer *CustomerPatchPayload `json:"customer"`
	Trip     *TripPatchPayload     `json:"trip"`
	Pricing  *PricingPatchPayload  `json:"pricing"`
	Notes    *string               `json:"notes"`
	Tags     *[]string             `json:"tags"`
}

func (r UpdateInquiryRequest) ToParams() commands.UpdateInquiryParams {
	params := commands.UpdateInquiryParams{
		Notes: r.Notes,
		Tags:  r.Tags,
	}
	if r.Customer != nil {
		params.Customer = &commands.CustomerPatch{
			Name:     r.Customer.Name,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Language: r.Customer.Language,
		}
	}
	if r.Trip != nil {
		params.Trip = &commands.TripPatch{
			TourType:   r.Trip.TourType,
			Date:       r.Trip.Date,
			Time:       r.Trip.Time,
			Duration:   r.Trip.Duration,
			Passengers: r.Trip.Passengers,
		}
	}
	if r.Pricing != nil {
		params.Pricing = &commands.PricingPatch{
			TierID:   r.Pricing.PricingType,
			SourceID: r.Pricing.Source,
			Extras: commands.ExtrasPatch{
				FishingLicenses: r.Pricing.Extras.FishingLicenses,
				Amount:          r.Pricing.Extras.Amount,
			},
			Reprice: commands.RepricePatch{
				Kind:  r.Pricing.Reprice.Type,
				Value: r.Pricing.Reprice.Discount,
			},
		}
	}
	return params
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SaveDraftRequest is deliberately lax: a draft snapshots whatever is in the
// form, including half-filled state that would fail create validation.
type SaveDraftRequest struct {
	Customer inquiry.Customer         `json:"customer"`
	Trip     inquiry.TripDetails      `json:"trip"`
	Pricing  inquiry.PricingSelection `json:"pricing"`
	Notes    string                   `json:"notes"`
}

func (r SaveDraftRequest) ToParams() commands.SaveDraftParams {
	return commands.SaveDraftParams{
		Customer: r.Customer,
		Trip:     r.Trip,
		Pricing:  r.Pricing,
		Notes:    r.Notes,
	}
}

func (p CustomerPayload) toDomain() inquiry.Customer {
	return inquiry.Customer{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Language: p.Language,
	}
}

func (p TripPayload) toDomain() inquiry.TripDetails {
	return inquiry.TripDetails{
		TourType:   p.TourType,
		Date:       p.Date,
		Time:       p.Time,
		Duration:   p.Duration,
		Passengers: p.Passengers,
	}
}

func (p PricingPayload) toDomain() inquiry.PricingSelection {
	return inquiry.PricingSelection{
		TierID:   p.PricingType,
		SourceID: p.Source,
		Extras: inquiry.ExtraSelection{
			FishingLicenses: p.Extras.FishingLicenses,
			Amount:          p.Extras.Amount,
		},
		Reprice: inquiry.RepriceSelection{
			Kind:  p.Reprice.Type,
			Value: p.Reprice.Discount,
		},
	}
}
