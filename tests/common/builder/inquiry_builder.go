//go:build unit || e2e

package builder

import (
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/usecase/queries"

	"github.com/google/uuid"
)

type InquiryBuilder struct {
	ID           uuid.UUID
	Status       inquiry.Status
	CustomerName string
	Email        string
	TourType     string
	Date         string
	Duration     float64
	Passengers   int
	TierID       string
	SourceID     string
	Notes        string
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewInquiryBuilder() *InquiryBuilder {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &InquiryBuilder{
		ID:           uuid.New(),
		Status:       inquiry.StatusDraft,
		CustomerName: "Maria Lopez",
		Email:        "maria@example.com",
		TourType:     "Bay Trip",
		Date:         "2026-04-01",
		Duration:     3,
		Passengers:   10,
		TierID:       "regular",
		SourceID:     "direct",
		Notes:        "afternoon preferred",
		Tags:         []string{"vip"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BuildCreateRequestBody returns the create payload as a mutable map so tests
// can knock out or override individual fields.
func (b *InquiryBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"name":  b.CustomerName,
			"email": b.Email,
		},
		"trip": map[string]any{
			"tourType":   b.TourType,
			"date":       b.Date,
			"duration":   b.Duration,
			"passengers": b.Passengers,
		},
		"pricing": map[string]any{
			"pricingType": b.TierID,
			"source":      b.SourceID,
		},
		"notes": b.Notes,
		"tags":  b.Tags,
	}
}

func (b *InquiryBuilder) BuildView() *queries.InquiryView {
	return &queries.InquiryView{
		ID:     b.ID,
		Status: b.Status.String(),
		Customer: inquiry.Customer{
			Name:     b.CustomerName,
			Email:    b.Email,
			Language: "en",
		},
		Trip: inquiry.TripDetails{
			TourType:   b.TourType,
			Date:       b.Date,
			Duration:   b.Duration,
			Passengers: b.Passengers,
		},
		Pricing: inquiry.PricingSelection{
			TierID:   b.TierID,
			SourceID: b.SourceID,
		},
		Result: pricing.Summary{
			BasePrice:     1800,
			Subtotal:      1800,
			BusinessPrice: 1800,
			CustomerPrice: 1800,
		},
		Notes:     b.Notes,
		Tags:      b.Tags,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *InquiryBuilder) BuildEntity() *inquiry.Inquiry {
	view := b.BuildView()
	return inquiry.Reconstruct(
		view.ID,
		inquiry.Status(view.Status),
		view.Customer,
		view.Trip,
		view.Pricing,
		view.Result,
		view.Notes,
		view.Tags,
		view.CreatedAt,
		view.UpdatedAt,
	)
}
