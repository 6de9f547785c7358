package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/truthos/meeting-intelligence/internal/adapter/presenter"
	"github.com/truthos/meeting-intelligence/internal/infrastructure/http/middleware"
	"github.com/truthos/meeting-intelligence/internal/usecase/analysis"
)

// analyzeNote explains the idempotency contract to clients: repeating the
// call with the same inputs returns the stored row, never a recompute.
const analyzeNote = "analysis is content-addressed; identical transcript, schema, prompt and model always return this exact row"

// Analysis handles the derived-store compute endpoint
type Analysis struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysis creates a new analysis handler
func NewAnalysis(svc analysis.Service, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, logger: logger}
}

// Analyze returns the cached analysis for a meeting, computing it once
// if no row exists for the full cache key yet.
func (h *Analysis) Analyze(c echo.Context) error {
	meetingID := c.Param("meetingId")
	if meetingID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidInput("meetingId path parameter is required"))
	}

	rc := middleware.GetRoleContext(c)
	m, a, err := h.svc.Analyze(c.Request().Context(), rc, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := meeting.AnalyzeResponse{
		TruthRef: presenter.ToTruthRef(m),
		Analysis: presenter.ToAnalysisResponse(a),
		Note:     analyzeNote,
	}
	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}
