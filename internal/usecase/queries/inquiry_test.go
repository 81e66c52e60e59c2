//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"boat-quotes/internal/infra"
	"boat-quotes/internal/pkg/clock"
	"boat-quotes/internal/usecase/queries"
	"boat-quotes/tests/common/builder"
	queriesmock "boat-quotes/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newInquiryQueries(t *testing.T) (queries.InquiryQueries, *queriesmock.MockInquiryReadStore, *queriesmock.MockDraftReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockInquiryReadStore(ctrl)
	drafts := queriesmock.NewMockDraftReader(ctrl)
	q := queries.NewInquiryQueries(store, drafts, clock.NewFixedClock(testNow))
	return q, store, drafts
}

func TestInquiryQueries_GetByID_NotFound(t *testing.T) {
	q, store, _ := newInquiryQueries(t)
	id := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("inquiry not found", nil, infra.KindNotFound)).Times(1)

	_, err := q.GetByID(context.Background(), id)
	require.ErrorIs(t, err, queries.ErrInquiryNotFound)
}

func TestInquiryQueries_List_DefaultsLimit(t *testing.T) {
	q, store, _ := newInquiryQueries(t)

	cases := []struct {
		name      string
		limit     int
		sortBy    queries.SortKey
		wantLimit int
		wantSort  queries.SortKey
	}{
		{name: "zero limit gets the default", limit: 0, wantLimit: 100},
		{name: "oversized limit gets the default", limit: 10000, wantLimit: 100},
		{name: "reasonable limit passes through", limit: 25, wantLimit: 25},
		{name: "unknown sort falls back to updated", limit: 10, sortBy: queries.SortKey("bogus"), wantLimit: 10, wantSort: queries.SortUpdated},
		{name: "known sort passes through", limit: 10, sortBy: queries.SortPrice, wantLimit: 10, wantSort: queries.SortPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store.EXPECT().List(gomock.Any(), queries.ListFilter{Limit: tc.wantLimit, SortBy: tc.wantSort}).
				Return(nil, nil).Times(1)

			_, err := q.List(context.Background(), queries.ListFilter{Limit: tc.limit, SortBy: tc.sortBy})
			require.NoError(t, err)
		})
	}
}

func TestInquiryQueries_Export(t *testing.T) {
	q, store, _ := newInquiryQueries(t)

	view := builder.NewInquiryBuilder().BuildView()
	lastModified := view.UpdatedAt

	store.EXPECT().List(gomock.Any(), queries.ListFilter{SortBy: queries.SortDateAsc}).
		Return([]*queries.InquiryView{view}, nil).Times(1)
	store.EXPECT().Stats(gomock.Any()).
		Return(&queries.StorageStats{Count: 1, LastModified: &lastModified}, nil).Times(1)

	doc, err := q.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, queries.ExportVersion, doc.Version)
	assert.Equal(t, testNow, doc.ExportDate)
	assert.Equal(t, 1, doc.Metadata.Count)
	require.NotNil(t, doc.Metadata.LastModified)
	assert.Equal(t, lastModified, *doc.Metadata.LastModified)
	require.Len(t, doc.Inquiries, 1)
	assert.Equal(t, view.ID, doc.Inquiries[0].ID)
}

func TestInquiryQueries_GetDraft(t *testing.T) {
	q, _, drafts := newInquiryQueries(t)

	drafts.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

	draft, err := q.GetDraft(context.Background())
	require.NoError(t, err)
	assert.Nil(t, draft)
}
