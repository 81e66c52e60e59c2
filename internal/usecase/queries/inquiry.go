package queries

import (
	"context"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/infra"
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInquiryNotFound = errs.New("inquiry not found")

// ExportVersion tags exported documents so imports can detect format drift.
const ExportVersion = "1.0.0"

const defaultListLimit = 100

// Read model for the saved-quotes side.
type InquiryView struct {
	ID        uuid.UUID                `json:"id"`
	Status    string                   `json:"status"`
	Customer  inquiry.Customer         `json:"customer"`
	Trip      inquiry.TripDetails      `json:"trip"`
	Pricing   inquiry.PricingSelection `json:"pricing"`
	Result    pricing.Summary          `json:"result"`
	Notes     string                   `json:"notes"`
	Tags      []string                 `json:"tags,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type SortKey string

const (
	// SortUpdated is the default: most recently touched first.
	SortUpdated  SortKey = ""
	SortDate     SortKey = "date"
	SortDateAsc  SortKey = "dateAsc"
	SortCustomer SortKey = "customer"
	SortPrice    SortKey = "price"
	SortStatus   SortKey = "status"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortUpdated, SortDate, SortDateAsc, SortCustomer, SortPrice, SortStatus:
		return true
	default:
		return false
	}
}

type ListFilter struct {
	Statuses    []inquiry.Status
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Search matches customer name, email, tour type and notes.
	Search string
	SortBy SortKey
	Limit  int
	Offset int
}

type StatusCounts map[inquiry.Status]int

type StorageStats struct {
	Count        int        `json:"count"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

type ExportMetadata struct {
	Count        int        `json:"count"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

type ExportDocument struct {
	Version    string         `json:"version"`
	ExportDate time.Time      `json:"exportDate"`
	Metadata   ExportMetadata `json:"metadata"`
	Inquiries  []*InquiryView `json:"inquiries"`
}

// DraftView is the autosaved snapshot of in-progress (unsaved) form state.
type DraftView struct {
	Customer inquiry.Customer         `json:"customer"`
	Trip     inquiry.TripDetails      `json:"trip"`
	Pricing  inquiry.PricingSelection `json:"pricing"`
	Notes    string                   `json:"notes"`
	Result   *pricing.Summary         `json:"result,omitempty"`
	SavedAt  time.Time                `json:"savedAt"`
}

type InquiryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	// List applies filter and sort; Limit <= 0 means no limit.
	List(ctx context.Context, filter ListFilter) ([]*InquiryView, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	Stats(ctx context.Context) (*StorageStats, error)
}

type DraftReader interface {
	// Load returns nil when no draft exists or the stored one has expired.
	Load(ctx context.Context) (*DraftView, error)
}

type InquiryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	List(ctx context.Context, filter ListFilter) ([]*InquiryView, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	Stats(ctx context.Context) (*StorageStats, error)
	Export(ctx context.Context) (*ExportDocument, error)
	GetDraft(ctx context.Context) (*DraftView, error)
}

type inquiryQueriesImpl struct {
	store  InquiryReadStore
	drafts DraftReader
	clock  clock.Clock
}

func NewInquiryQueries(store InquiryReadStore, drafts DraftReader, clk clock.Clock) InquiryQueries {
	return &inquiryQueriesImpl{store: store, drafts: drafts, clock: clk}
}

func (q *inquiryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InquiryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *inquiryQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*InquiryView, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = defaultListLimit
	}
	if !filter.SortBy.IsValid() {
		filter.SortBy = SortUpdated
	}
	return q.store.List(ctx, filter)
}

func (q *inquiryQueriesImpl) CountByStatus(ctx context.Context) (StatusCounts, error) {
	return q.store.CountByStatus(ctx)
}

func (q *inquiryQueriesImpl) Stats(ctx context.Context) (*StorageStats, error) {
	return q.store.Stats(ctx)
}

func (q *inquiryQueriesImpl) Export(ctx context.Context) (*ExportDocument, error) {
	// The export carries everything, newest changes last so a replace-import
	// replays in creation order.
	views, err := q.store.List(ctx, ListFilter{SortBy: SortDateAsc})
	if err != nil {
		return nil, err
	}

	stats, err := q.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportDocument{
		Version:    ExportVersion,
		ExportDate: q.clock.Now(),
		Metadata: ExportMetadata{
			Count:        stats.Count,
			LastModified: stats.LastModified,
		},
		Inquiries: views,
	}, nil
}

func (q *inquiryQueriesImpl) GetDraft(ctx context.Context) (*DraftView, error) {
	return q.drafts.Load(ctx)
}
