package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truthos/meeting-intelligence/internal/infrastructure/http/middleware"
	"github.com/truthos/meeting-intelligence/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	analysisHandler *Analysis
	contactHandler  *Contact
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, analysisHandler *Analysis, contactHandler *Contact) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		analysisHandler: analysisHandler,
		contactHandler:  contactHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1", middleware.EchoRole())

	v1.POST("/meetings", rt.meetingHandler.Ingest)
	v1.POST("/meetings/:meetingId/analyze", rt.analysisHandler.Analyze)
	v1.GET("/contacts/:contactId/meetings", rt.contactHandler.Meetings)
}

// healthCheck returns the service health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "meeting-intelligence",
	})
}
