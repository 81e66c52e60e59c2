package commands

import (
	"context"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/infra"
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/pkg/errs"
	"boat-quotes/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound = errs.New("inquiry not found")
	ErrInvalidStatus   = errs.New("invalid inquiry status")
	ErrEmptyImport     = errs.New("import document contains no valid inquiries")
)

// InquiryRepository is the write-side port. ReplaceAll and Upsert exist for
// the import paths only.
type InquiryRepository interface {
	Create(ctx context.Context, inq *inquiry.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	Update(ctx context.Context, inq *inquiry.Inquiry) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Upsert(ctx context.Context, inq *inquiry.Inquiry) error
	ReplaceAll(ctx context.Context, inquiries []*inquiry.Inquiry) error
}

type CreateInquiryParams struct {
	Customer inquiry.Customer
	Trip     inquiry.TripDetails
	Pricing  inquiry.PricingSelection
	Notes    string
	Tags     []string
}

// Patch structs carry only the fields the caller wants to change; nil means
// keep the stored value. This mirrors the deep-merge the quote form does when
// it saves partial edits.

type CustomerPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Language *string
}

type TripPatch struct {
	TourType   *string
	Date       *string
	Time       *string
	Duration   *float64
	Passengers *int
}

type ExtrasPatch struct {
	FishingLicenses *int
	Amount          *float64
}

type RepricePatch struct {
	Kind  *string
	Value *float64
}

type PricingPatch struct {
	TierID   *string
	SourceID *string
	Extras   ExtrasPatch
	Reprice  RepricePatch
}

type UpdateInquiryParams struct {
	Customer *CustomerPatch
	Trip     *TripPatch
	Pricing  *PricingPatch
	Notes    *string
	Tags     *[]string
}

// ImportedInquiry is one entry of an uploaded backup. Timestamps and the
// stored pricing summary are trusted as-is; only the id is required.
type ImportedInquiry struct {
	ID        uuid.UUID                `json:"id"`
	Status    string                   `json:"status"`
	Customer  inquiry.Customer         `json:"customer"`
	Trip      inquiry.TripDetails      `json:"trip"`
	Pricing   inquiry.PricingSelection `json:"pricing"`
	Result    pricing.Summary          `json:"result"`
	Notes     string                   `json:"notes"`
	Tags      []string                 `json:"tags"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type ImportDocument struct {
	Version   string            `json:"version"`
	Inquiries []ImportedInquiry `json:"inquiries"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type InquiryCommands interface {
	Create(ctx context.Context, params CreateInquiryParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateInquiryParams) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	// Import loads a previously exported document. With merge, entries are
	// upserted over the existing set; without, the set is replaced wholesale.
	Import(ctx context.Context, doc ImportDocument, merge bool) (*ImportResult, error)
}

type inquiryCommandsImpl struct {
	repo  InquiryRepository
	calc  *pricing.Calculator
	clock clock.Clock
}

func NewInquiryCommands(repo InquiryRepository, calc *pricing.Calculator, clk clock.Clock) InquiryCommands {
	return &inquiryCommandsImpl{repo: repo, calc: calc, clock: clk}
}

func (c *inquiryCommandsImpl) Create(ctx context.Context, params CreateInquiryParams) (uuid.UUID, error) {
	result := c.calc.Calculate(params.Pricing.ToRequest(params.Trip)).Summary

	inq := inquiry.NewInquiry(
		c.clock.Now(),
		params.Customer,
		params.Trip,
		params.Pricing,
		result,
		params.Notes,
		params.Tags,
	)

	if err := c.repo.Create(ctx, inq); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create inquiry")
	}
	return inq.ID(), nil
}

func (c *inquiryCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateInquiryParams) error {
	inq, err := c.findInquiry(ctx, id)
	if err != nil {
		return err
	}

	customer := mergeCustomer(inq.Customer(), params.Customer)
	trip := mergeTrip(inq.Trip(), params.Trip)
	selection := mergePricing(inq.Pricing(), params.Pricing)
	notes := patch.Coalesce(params.Notes, inq.Notes())
	tags := inq.Tags()
	if params.Tags != nil {
		tags = *params.Tags
	}

	// The snapshot is recomputed on every edit so the stored summary always
	// matches the stored selection.
	result := c.calc.Calculate(selection.ToRequest(trip)).Summary

	inq.Update(customer, trip, selection, result, notes, tags, c.clock.Now())

	if err := c.repo.Update(ctx, inq); err != nil {
		return errs.Wrap(err, "failed to update inquiry")
	}
	return nil
}

func (c *inquiryCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	inq, err := c.findInquiry(ctx, id)
	if err != nil {
		return err
	}

	if err := inq.SetStatus(inquiry.Status(status), c.clock.Now()); err != nil {
		// Wrap, not Mark: handlers match this sentinel with errors.Is and a
		// cockroachdb mark is invisible to the stdlib unwrap chain.
		return errs.Wrapf(ErrInvalidStatus, "status %q", status)
	}

	if err := c.repo.Update(ctx, inq); err != nil {
		return errs.Wrap(err, "failed to update inquiry status")
	}
	return nil
}

func (c *inquiryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := c.repo.Delete(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to delete inquiry")
	}
	if !deleted {
		return ErrInquiryNotFound
	}
	return nil
}

func (c *inquiryCommandsImpl) Duplicate(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	inq, err := c.findInquiry(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	dup := inq.Duplicate(c.clock.Now())
	if err := c.repo.Create(ctx, dup); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create duplicated inquiry")
	}
	return dup.ID(), nil
}

func (c *inquiryCommandsImpl) Import(ctx context.Context, doc ImportDocument, merge bool) (*ImportResult, error) {
	now := c.clock.Now()

	valid := make([]*inquiry.Inquiry, 0, len(doc.Inquiries))
	skipped := 0
	for _, entry := range doc.Inquiries {
		if entry.ID == uuid.Nil {
			skipped++
			continue
		}
		valid = append(valid, restoreImported(entry, now))
	}

	if len(valid) == 0 {
		return nil, ErrEmptyImport
	}

	if merge {
		for _, inq := range valid {
			if err := c.repo.Upsert(ctx, inq); err != nil {
				return nil, errs.Wrap(err, "failed to merge imported inquiry")
			}
		}
	} else {
		if err := c.repo.ReplaceAll(ctx, valid); err != nil {
			return nil, errs.Wrap(err, "failed to replace inquiries from import")
		}
	}

	return &ImportResult{Imported: len(valid), Skipped: skipped}, nil
}

func (c *inquiryCommandsImpl) findInquiry(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	inq, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, errs.Wrap(err, "failed to find inquiry")
	}
	return inq, nil
}

func restoreImported(entry ImportedInquiry, now time.Time) *inquiry.Inquiry {
	status := inquiry.Status(entry.Status)
	if !status.IsValid() {
		status = inquiry.StatusDraft
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	// Merged entries count as touched now, matching how a restore bumps the
	// local copy's modification time.
	updatedAt := now
	if !entry.UpdatedAt.IsZero() {
		updatedAt = entry.UpdatedAt
	}

	return inquiry.Reconstruct(
		entry.ID,
		status,
		entry.Customer,
		entry.Trip,
		entry.Pricing,
		entry.Result,
		entry.Notes,
		entry.Tags,
		createdAt,
		updatedAt,
	)
}

func mergeCustomer(base inquiry.Customer, p *CustomerPatch) inquiry.Customer {
	if p == nil {
		return base
	}
	return inquiry.Customer{
		Name:     patch.Coalesce(p.Name, base.Name),
		Email:    patch.Coalesce(p.Email, base.Email),
		Phone:    patch.Coalesce(p.Phone, base.Phone),
		Language: patch.Coalesce(p.Language, base.Language),
	}
}

func mergeTrip(base inquiry.TripDetails, p *TripPatch) inquiry.TripDetails {
	if p == nil {
		return base
	}
	return inquiry.TripDetails{
		TourType:   patch.Coalesce(p.TourType, base.TourType),
		Date:       patch.Coalesce(p.Date, base.Date),
		Time:       patch.Coalesce(p.Time, base.Time),
		Duration:   patch.Coalesce(p.Duration, base.Duration),
		Passengers: patch.Coalesce(p.Passengers, base.Passengers),
	}
}

func mergePricing(base inquiry.PricingSelection, p *PricingPatch) inquiry.PricingSelection {
	if p == nil {
		return base
	}
	return inquiry.PricingSelection{
		TierID:   patch.Coalesce(p.TierID, base.TierID),
		SourceID: patch.Coalesce(p.SourceID, base.SourceID),
		Extras: inquiry.ExtraSelection{
			FishingLicenses: patch.Coalesce(p.Extras.FishingLicenses, base.Extras.FishingLicenses),
			Amount:          patch.Coalesce(p.Extras.Amount, base.Extras.Amount),
		},
		Reprice: inquiry.RepriceSelection{
			Kind:  patch.Coalesce(p.Reprice.Kind, base.Reprice.Kind),
			Value: patch.Coalesce(p.Reprice.Value, base.Reprice.Value),
		},
	}
}
