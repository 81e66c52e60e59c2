//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"boat-quotes/internal/handler/api"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"
	"boat-quotes/tests/common/builder"
	"boat-quotes/tests/common/helper"
	commandsmock "boat-quotes/tests/mock/commands"
	queriesmock "boat-quotes/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InquiryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInquiryCommands
	mockQueries  *queriesmock.MockInquiryQueries
	handler      *api.InquiryHandler
}

func (s *InquiryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInquiryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInquiryQueries(s.mockCtrl)
	s.handler = api.NewInquiryHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/inquiries", s.handler.Create)
	s.router.GET("/inquiries", s.handler.List)
	s.router.GET("/inquiries/stats", s.handler.Stats)
	s.router.GET("/inquiries/export", s.handler.Export)
	s.router.POST("/inquiries/import", s.handler.Import)
	s.router.GET("/inquiries/:id", s.handler.Get)
	s.router.PUT("/inquiries/:id", s.handler.Update)
	s.router.PATCH("/inquiries/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/inquiries/:id", s.handler.Delete)
	s.router.POST("/inquiries/:id/duplicate", s.handler.Duplicate)
}

func (s *InquiryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInquiryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InquiryHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *InquiryHandlerTestSuite) TestCreate() {
	url := "/inquiries"

	b := builder.NewInquiryBuilder()
	view := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), view.ID.String())
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing customer", mutate: helper.Field("customer", nil)},
		{name: "missing customer name", mutate: helper.Nested("customer", helper.Field("name", nil))},
		{name: "missing trip", mutate: helper.Field("trip", nil)},
		{name: "missing tour type", mutate: helper.Nested("trip", helper.Field("tourType", nil))},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := b.BuildCreateRequestBody()
			tc.mutate(body)

			rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *InquiryHandlerTestSuite) TestGet() {
	b := builder.NewInquiryBuilder()
	view := b.BuildView()

	s.Run("success: returns the inquiry", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries/"+view.ID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Maria Lopez")
	})

	s.Run("invalid id: returns 400", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown id: returns 404", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknown).
			Return(nil, queries.ErrInquiryNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries/"+unknown.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *InquiryHandlerTestSuite) TestList() {
	b := builder.NewInquiryBuilder()

	s.Run("success: wraps results under inquiries", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.InquiryView{b.BuildView()}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries?status=draft&sort=date", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Contains(body, "inquiries")
	})

	s.Run("unknown status: returns 400", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries?status=archived", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown sort key: returns 400", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries?sort=alphabetical", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpdate / TestUpdateStatus
// ================================================================================

func (s *InquiryHandlerTestSuite) TestUpdate() {
	b := builder.NewInquiryBuilder()
	view := b.BuildView()
	url := "/inquiries/" + view.ID.String()

	s.Run("success: returns the updated inquiry", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "updated"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(commands.ErrInquiryNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "updated"})
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *InquiryHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewInquiryBuilder()
	view := b.BuildView()
	url := "/inquiries/" + view.ID.String() + "/status"

	s.Run("success: returns the inquiry with its new status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "confirmed").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown status: returns 400", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "archived").
			Return(commands.ErrInvalidStatus).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing status: returns 400", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestDelete / TestDuplicate
// ================================================================================

func (s *InquiryHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/inquiries/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrInquiryNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *InquiryHandlerTestSuite) TestDuplicate() {
	b := builder.NewInquiryBuilder()
	source := b.BuildView()

	dupBuilder := builder.NewInquiryBuilder()
	dup := dupBuilder.BuildView()

	s.Run("success: returns 201 with the new draft", func() {
		s.mockCommands.EXPECT().Duplicate(gomock.Any(), source.ID).
			Return(dup.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), dup.ID).
			Return(dup, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/inquiries/"+source.ID.String()+"/duplicate", nil)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), dup.ID.String())
	})
}

// ================================================================================
// TestStats / TestExport / TestImport
// ================================================================================

func (s *InquiryHandlerTestSuite) TestStats() {
	s.Run("success: returns totals and per-status counts", func() {
		counts := queries.StatusCounts{"draft": 2, "confirmed": 1}
		s.mockQueries.EXPECT().CountByStatus(gomock.Any()).Return(counts, nil).Times(1)
		s.mockQueries.EXPECT().Stats(gomock.Any()).
			Return(&queries.StorageStats{Count: 3}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries/stats", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"total":3`)
	})
}

func (s *InquiryHandlerTestSuite) TestExport() {
	s.Run("success: returns attachment with versioned document", func() {
		b := builder.NewInquiryBuilder()
		doc := &queries.ExportDocument{
			Version:    queries.ExportVersion,
			ExportDate: b.CreatedAt,
			Inquiries:  []*queries.InquiryView{b.BuildView()},
		}
		s.mockQueries.EXPECT().Export(gomock.Any()).Return(doc, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/inquiries/export", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Disposition"), "inquiries-2026-03-15.json")
		s.Contains(rec.Body.String(), `"version":"1.0.0"`)
	})
}

func (s *InquiryHandlerTestSuite) TestImport() {
	importBody := map[string]any{
		"version": "1.0.0",
		"inquiries": []map[string]any{
			{"id": uuid.New().String(), "status": "draft"},
		},
	}

	s.Run("success: replace mode", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), false).
			Return(&commands.ImportResult{Imported: 1}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/inquiries/import", importBody)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"imported":1`)
	})

	s.Run("success: merge mode via query param", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), true).
			Return(&commands.ImportResult{Imported: 1}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/inquiries/import?merge=true", importBody)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("empty document: returns 400", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), false).
			Return(nil, commands.ErrEmptyImport).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/inquiries/import", map[string]any{"version": "1.0.0"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
