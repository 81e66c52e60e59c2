package inquiry

import (
	"errors"
	"fmt"
	"time"

	"boat-quotes/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid inquiry status")
)

// Inquiry is a saved quote: a frozen copy of the form state plus the pricing
// summary computed at save time. The summary is a snapshot, not a live value;
// it only changes when the inquiry is updated through the pricing pipeline.
type Inquiry struct {
	id        uuid.UUID
	status    Status
	customer  Customer
	trip      TripDetails
	pricing   PricingSelection
	result    pricing.Summary
	notes     string
	tags      []string
	createdAt time.Time
	updatedAt time.Time
}

func NewInquiry(
	now time.Time,
	customer Customer,
	trip TripDetails,
	selection PricingSelection,
	result pricing.Summary,
	notes string,
	tags []string,
) *Inquiry {
	if customer.Language == "" {
		customer.Language = "en"
	}

	return &Inquiry{
		id:        uuid.New(),
		status:    StatusDraft,
		customer:  customer,
		trip:      trip,
		pricing:   selection,
		result:    result,
		notes:     notes,
		tags:      cloneTags(tags),
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id uuid.UUID,
	status Status,
	customer Customer,
	trip TripDetails,
	selection PricingSelection,
	result pricing.Summary,
	notes string,
	tags []string,
	createdAt, updatedAt time.Time,
) *Inquiry {
	return &Inquiry{
		id:        id,
		status:    status,
		customer:  customer,
		trip:      trip,
		pricing:   selection,
		result:    result,
		notes:     notes,
		tags:      tags,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the mutable document fields and bumps updatedAt. Identity,
// status and createdAt are untouched.
func (i *Inquiry) Update(
	customer Customer,
	trip TripDetails,
	selection PricingSelection,
	result pricing.Summary,
	notes string,
	tags []string,
	now time.Time,
) {
	i.customer = customer
	i.trip = trip
	i.pricing = selection
	i.result = result
	i.notes = notes
	i.tags = cloneTags(tags)
	i.updatedAt = now
}

func (i *Inquiry) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	i.status = status
	i.updatedAt = now
	return nil
}

// Duplicate clones the inquiry under a new identity: status reset to draft,
// fresh timestamps, and a note recording where the copy came from.
func (i *Inquiry) Duplicate(now time.Time) *Inquiry {
	prefix := fmt.Sprintf("Duplicated from %s", i.createdAt.Format("1/2/2006"))
	notes := prefix
	if i.notes != "" {
		notes = prefix + "\n" + i.notes
	}

	return &Inquiry{
		id:        uuid.New(),
		status:    StatusDraft,
		customer:  i.customer,
		trip:      i.trip,
		pricing:   i.pricing,
		result:    i.result,
		notes:     notes,
		tags:      cloneTags(i.tags),
		createdAt: now,
		updatedAt: now,
	}
}

func (i *Inquiry) ID() uuid.UUID { return i.id }

func (i *Inquiry) Status() Status { return i.status }

func (i *Inquiry) Customer() Customer { return i.customer }

func (i *Inquiry) Trip() TripDetails { return i.trip }

func (i *Inquiry) Pricing() PricingSelection { return i.pricing }

func (i *Inquiry) Result() pricing.Summary { return i.result }

func (i *Inquiry) Notes() string { return i.notes }

func (i *Inquiry) Tags() []string { return cloneTags(i.tags) }

func (i *Inquiry) CreatedAt() time.Time { return i.createdAt }

func (i *Inquiry) UpdatedAt() time.Time { return i.updatedAt }

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
