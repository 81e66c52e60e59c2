//go:build unit

package inquiry_test

import (
	"testing"
	"time"

	"boat-quotes/internal/domain/inquiry"
	"boat-quotes/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func newTestInquiry(t *testing.T) *inquiry.Inquiry {
	t.Helper()
	return inquiry.NewInquiry(
		testNow,
		inquiry.Customer{Name: "Maria Lopez", Email: "maria@example.com"},
		inquiry.TripDetails{TourType: "Fishing", Date: "2026-03-01", Duration: 4, Passengers: 16},
		inquiry.PricingSelection{TierID: "regular", SourceID: "direct"},
		pricing.Summary{Subtotal: 2600, BusinessPrice: 2600, CustomerPrice: 2600},
		"call back after 5pm",
		[]string{"vip"},
	)
}

func TestNewInquiry(t *testing.T) {
	inq := newTestInquiry(t)

	assert.NotEqual(t, uuid.Nil, inq.ID())
	assert.Equal(t, inquiry.StatusDraft, inq.Status())
	assert.Equal(t, testNow, inq.CreatedAt())
	assert.Equal(t, testNow, inq.UpdatedAt())
	assert.Equal(t, "en", inq.Customer().Language)
	assert.Equal(t, []string{"vip"}, inq.Tags())
}

func TestSetStatus(t *testing.T) {
	cases := []struct {
		name   string
		status inquiry.Status
		errIs  error
	}{
		{name: "pending OK", status: inquiry.StatusPending},
		{name: "sent OK", status: inquiry.StatusSent},
		{name: "confirmed OK", status: inquiry.StatusConfirmed},
		{name: "cancelled OK", status: inquiry.StatusCancelled},
		{name: "unknown status rejected", status: inquiry.Status("archived"), errIs: inquiry.ErrInvalidStatus},
		{name: "empty status rejected", status: inquiry.Status(""), errIs: inquiry.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inq := newTestInquiry(t)
			later := testNow.Add(time.Hour)

			err := inq.SetStatus(tc.status, later)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, inquiry.StatusDraft, inq.Status())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.status, inq.Status())
			assert.Equal(t, later, inq.UpdatedAt())
		})
	}
}

func TestUpdate(t *testing.T) {
	inq := newTestInquiry(t)
	firstEdit := testNow.Add(10 * time.Minute)
	later := testNow.Add(30 * time.Minute)

	inq.Update(
		inquiry.Customer{Name: "Maria Lopez", Email: "maria@example.com", Language: "es"},
		inquiry.TripDetails{TourType: "Bay Trip", Duration: 3, Passengers: 10},
		inquiry.PricingSelection{TierID: "snack", SourceID: "viator"},
		pricing.Summary{Subtotal: 1350, BusinessPrice: 1350, CustomerPrice: 1588.2352941176468},
		"",
		nil,
		firstEdit,
	)
	assert.Equal(t, firstEdit, inq.UpdatedAt())

	inq.Update(inq.Customer(), inq.Trip(), inq.Pricing(), inq.Result(), inq.Notes(), inq.Tags(), later)

	assert.Equal(t, "Bay Trip", inq.Trip().TourType)
	assert.Equal(t, "snack", inq.Pricing().TierID)
	assert.Equal(t, later, inq.UpdatedAt())
	assert.Equal(t, testNow, inq.CreatedAt())
}

func TestDuplicate(t *testing.T) {
	inq := newTestInquiry(t)
	require.NoError(t, inq.SetStatus(inquiry.StatusConfirmed, testNow))

	later := testNow.Add(48 * time.Hour)
	dup := inq.Duplicate(later)

	assert.NotEqual(t, inq.ID(), dup.ID())
	assert.Equal(t, inquiry.StatusDraft, dup.Status())
	assert.Equal(t, later, dup.CreatedAt())
	assert.Equal(t, later, dup.UpdatedAt())
	assert.Equal(t, inq.Customer(), dup.Customer())
	assert.Equal(t, inq.Result(), dup.Result())
	assert.Equal(t, "Duplicated from 2/9/2026\ncall back after 5pm", dup.Notes())

	// Tag slices must not alias.
	tags := dup.Tags()
	tags[0] = "changed"
	assert.Equal(t, []string{"vip"}, dup.Tags())
}

func TestDuplicate_EmptyNotes(t *testing.T) {
	inq := inquiry.NewInquiry(testNow, inquiry.Customer{}, inquiry.TripDetails{}, inquiry.PricingSelection{}, pricing.Summary{}, "", nil)
	dup := inq.Duplicate(testNow)
	assert.Equal(t, "Duplicated from 2/9/2026", dup.Notes())
}
