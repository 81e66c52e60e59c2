package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boat-quotes/internal/handler/api"
	"boat-quotes/internal/handler/middleware"
	"boat-quotes/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pricingHandler *api.PricingHandler,
	inquiryHandler *api.InquiryHandler,
	draftHandler *api.DraftHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pricingHandler, inquiryHandler, draftHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pricingHandler *api.PricingHandler,
	inquiryHandler *api.InquiryHandler,
	draftHandler *api.DraftHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pricing := apiGroup.Group("/pricing")
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.Quote},
				{Method: http.MethodGet, Path: "/rules", Handler: pricingHandler.Rules},
			})
		}

		inquiries := apiGroup.Group("/inquiries")
		{
			addRoutes(inquiries, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: inquiryHandler.Stats},
				{Method: http.MethodGet, Path: "/export", Handler: inquiryHandler.Export},
				{Method: http.MethodPost, Path: "/import", Handler: inquiryHandler.Import},
				{Method: http.MethodPost, Path: "", Handler: inquiryHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: inquiryHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: inquiryHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: inquiryHandler.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: inquiryHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: inquiryHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/duplicate", Handler: inquiryHandler.Duplicate},
			})
		}

		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPut, Path: "/current", Handler: draftHandler.Save},
				{Method: http.MethodGet, Path: "/current", Handler: draftHandler.Get},
				{Method: http.MethodDelete, Path: "/current", Handler: draftHandler.Clear},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
