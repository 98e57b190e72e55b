package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	analysisController *AnalysisController
	authMW             echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisController *AnalysisController, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:                cfg,
		analysisController: analysisController,
		authMW:             authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalysisRoutes(v1)
}

// setupAnalysisRoutes configures transcript analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	group := g.Group("/analyses")

	// Prefill only decodes a query parameter; no owner involved
	group.GET("/prefill", rt.analysisController.Prefill)

	authed := group
	if rt.authMW != nil {
		authed = group.Group("", rt.authMW)
	}

	authed.POST("/process", rt.analysisController.ProcessTranscript)
	authed.POST("", rt.analysisController.SaveAnalysis)
	authed.GET("", rt.analysisController.History)
	authed.GET("/:id", rt.analysisController.GetAnalysis)
	authed.POST("/export", rt.analysisController.ExportResult)
	authed.POST("/:id/export", rt.analysisController.ExportSaved)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
