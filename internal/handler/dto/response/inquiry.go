package response

import (
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InquiryResponse struct {
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

func FromInquiryView(v *queries.InquiryView) *InquiryResponse {
	var resp InquiryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromInquiryList(views []*queries.InquiryView) []*InquiryResponse {
	out := make([]*InquiryResponse, len(views))
	for i, v := range views {
		out[i] = FromInquiryView(v)
	}
	return out
}

type StatsResponse struct {
	Total   int            `json:"total"`
	Counts  map[string]int `json:"byStatus"`
	Storage StorageStats   `json:"storage"`
}

type StorageStats struct {
	Count        int        `json:"count"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

func FromStats(counts queries.StatusCounts, stats *queries.StorageStats) *StatsResponse {
	byStatus := make(map[string]int, len(counts))
	total := 0
	for status, n := range counts {
		byStatus[status.String()] = n
		total += n
	}
	return &StatsResponse{
		Total:  total,
		Counts: byStatus,
		Storage: StorageStats{
			Count:        stats.Count,
			LastModified: stats.LastModified,
		},
	}
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func FromImportResult(result *commands.ImportResult) *ImportResponse {
	return &ImportResponse{Imported: result.Imported, Skipped: result.Skipped}
}

type DraftResponse struct {
	Customer inquiry.Customer         `json:"customer"`
	Trip     inquiry.TripDetails      `json:"trip"`
	Pricing  inquiry.PricingSelection `json:"pricing"`
	Notes    string                   `json:"notes"`
	Result   *pricing.Summary         `json:"result,omitempty"`
	SavedAt  time.Time                `json:"savedAt"`
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	var resp DraftResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
