package api

import (
	"net/http"

	reqdto "boat-quotes/internal/handler/dto/request"
	resdto "boat-quotes/internal/handler/dto/response"
	"boat-quotes/internal/handler/httperr"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	cmds commands.DraftCommands
	q    queries.InquiryQueries
}

func NewDraftHandler(cmds commands.DraftCommands, q queries.InquiryQueries) *DraftHandler {
	return &DraftHandler{cmds: cmds, q: q}
}

// @Summary Save draft
// @Description Autosave the in-progress quote form; replaces any existing draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body reqdto.SaveDraftRequest true "Draft form state"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/current [put]
func (h *DraftHandler) Save(c *gin.Context) {
	var req reqdto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	draft, err := h.cmds.Save(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Save draft failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(draft))
}

// @Summary Get draft
// @Description Get the autosaved draft, if one exists and has not expired
// @Tags drafts
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /drafts/current [get]
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.q.GetDraft(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load draft", nil)
		return
	}
	if draft == nil {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "No draft saved"
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(draft))
}

// @Summary Clear draft
// @Description Discard the autosaved draft
// @Tags drafts
// @Success 204 "No Content"
// @Router /drafts/current [delete]
func (h *DraftHandler) Clear(c *gin.Context) {
	if err := h.cmds.Clear(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Clear draft failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
