package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/truthos/meeting-intelligence/internal/adapter/presenter"
	"github.com/truthos/meeting-intelligence/internal/infrastructure/http/middleware"
	"github.com/truthos/meeting-intelligence/internal/usecase/ingest"
)

// ingestNote is returned verbatim with every ingest response so clients
// never expect derived content from a write to the truth store.
const ingestNote = "transcript stored as immutable truth; request analysis via POST /v1/meetings/{meetingId}/analyze"

// Meeting handles the truth-store write endpoint
type Meeting struct {
	svc    ingest.Service
	logger *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(svc ingest.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// Ingest appends one meeting record to the truth store
func (h *Meeting) Ingest(c echo.Context) error {
	var req meeting.IngestMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidInput("request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidInput(err.Error()))
	}

	rc := middleware.GetRoleContext(c)
	m, err := h.svc.Ingest(c.Request().Context(), rc, ingest.Input{
		MeetingID:  req.MeetingID,
		ContactID:  req.ContactID,
		Type:       req.Type,
		OccurredAt: req.OccurredAt,
		Transcript: req.Transcript,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := meeting.IngestResponse{
		Truth:   presenter.ToMeetingResponse(m),
		Derived: nil,
		Note:    ingestNote,
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, resp)
}
