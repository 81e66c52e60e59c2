package api

import (
	"net/http"

	reqdto "boat-quotes/internal/handler/dto/request"
	resdto "boat-quotes/internal/handler/dto/response"
	"boat-quotes/internal/handler/httperr"
	"boat-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Calculate quote
// @Description Calculate an itemized price breakdown for a tour request
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view := h.q.Quote(req.ToDomain())
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Get pricing rules
// @Description Get the active rule table: tiers, sources, tour types, reprice kinds and constants
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.RuleSetResponse
// @Router /pricing/rules [get]
func (h *PricingHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromRuleSetView(h.q.RuleSet()))
}
