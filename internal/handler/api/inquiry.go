package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"boat-quotes/internal/domain/inquiry"
	reqdto "boat-quotes/internal/handler/dto/request"
	resdto "boat-quotes/internal/handler/dto/response"
	"boat-quotes/internal/handler/httperr"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiryHandler struct {
	cmds commands.InquiryCommands
	q    queries.InquiryQueries
}

func NewInquiryHandler(cmds commands.InquiryCommands, q queries.InquiryQueries) *InquiryHandler {
	return &InquiryHandler{cmds: cmds, q: q}
}

// @Summary Create inquiry
// @Description Save a quote as an inquiry; the pricing summary is computed server-side
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInquiryRequest true "Create inquiry request"
// @Success 201 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Router /inquiries [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create inquiry failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inquiry", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInquiryView(view))
}

// @Summary Get inquiry
// @Description Get an inquiry by ID
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortWithInquiryError(c, err, "Failed to get inquiry")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInquiryView(view))
}

// @Summary List inquiries
// @Description List inquiries with optional status, date-range and text filters
// @Tags inquiries
// @Produce json
// @Param status query string false "Comma-separated statuses"
// @Param search query string false "Match against customer name, email, tour type and notes"
// @Param from query string false "Created-at lower bound (RFC 3339)"
// @Param to query string false "Created-at upper bound (RFC 3339)"
// @Param sort query string false "Sort key: date, dateAsc, customer, price, status"
// @Param limit query int false "Max items (default 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Router /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list inquiries", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": resdto.FromInquiryList(views)})
}

// @Summary Update inquiry
// @Description Partially update an inquiry; the pricing summary is recomputed
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.UpdateInquiryRequest true "Update inquiry request"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id} [put]
func (h *InquiryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateInquiryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		h.abortWithInquiryError(c, err, "Update inquiry failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inquiry", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInquiryView(view))
}

// @Summary Update inquiry status
// @Description Move an inquiry through its workflow (draft, pending, sent, confirmed, cancelled)
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.UpdateStatusRequest true "Status update request"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.abortWithInquiryError(c, err, "Update status failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inquiry", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInquiryView(view))
}

// @Summary Delete inquiry
// @Description Delete an inquiry by ID
// @Tags inquiries
// @Param id path string true "Inquiry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortWithInquiryError(c, err, "Delete inquiry failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Duplicate inquiry
// @Description Clone an inquiry as a new draft with a provenance note
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 201 {object} resdto.InquiryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id}/duplicate [post]
func (h *InquiryHandler) Duplicate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	dupID, err := h.cmds.Duplicate(c.Request.Context(), id)
	if err != nil {
		h.abortWithInquiryError(c, err, "Duplicate inquiry failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), dupID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inquiry", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInquiryView(view))
}

// @Summary Inquiry statistics
// @Description Per-status counts plus storage stats
// @Tags inquiries
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Failure 500 {object} map[string]string
// @Router /inquiries/stats [get]
func (h *InquiryHandler) Stats(c *gin.Context) {
	counts, err := h.q.CountByStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(counts, stats))
}

// @Summary Export inquiries
// @Description Download all inquiries as a versioned JSON document
// @Tags inquiries
// @Produce json
// @Success 200 {object} queries.ExportDocument
// @Failure 500 {object} map[string]string
// @Router /inquiries/export [get]
func (h *InquiryHandler) Export(c *gin.Context) {
	doc, err := h.q.Export(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}

	filename := fmt.Sprintf("inquiries-%s.json", doc.ExportDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// @Summary Import inquiries
// @Description Restore inquiries from an exported document; merge upserts, otherwise the set is replaced
// @Tags inquiries
// @Accept json
// @Produce json
// @Param merge query bool false "Merge into existing inquiries instead of replacing"
// @Param request body commands.ImportDocument true "Previously exported document"
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} map[string]string
// @Router /inquiries/import [post]
func (h *InquiryHandler) Import(c *gin.Context) {
	var doc commands.ImportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid import document", nil)
		return
	}

	merge := c.Query("merge") == "true"

	result, err := h.cmds.Import(c.Request.Context(), doc, merge)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyImport) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No valid inquiries to import", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Import failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImportResult(result))
}

func (h *InquiryHandler) abortWithInquiryError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrInquiryNotFound), errors.Is(err, queries.ErrInquiryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Inquiry not found", nil)
	case errors.Is(err, commands.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func listFilterFromQuery(c *gin.Context) (queries.ListFilter, error) {
	var filter queries.ListFilter

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := inquiry.Status(strings.TrimSpace(s))
			if !status.IsValid() {
				return filter, fmt.Errorf("unknown status %q", s)
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		filter.CreatedFrom = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
		filter.CreatedTo = &t
	}

	filter.Search = c.Query("search")

	sortBy := queries.SortKey(c.Query("sort"))
	if !sortBy.IsValid() {
		return filter, fmt.Errorf("unknown sort key %q", sortBy)
	}
	filter.SortBy = sortBy

	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Offset = v
		}
	}

	return filter, nil
}
