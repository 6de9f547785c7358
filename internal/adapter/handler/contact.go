package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/adapter/presenter"
	"github.com/truthos/meeting-intelligence/internal/usecase/contact"
)

// Contact handles the per-contact read model
type Contact struct {
	svc    contact.Service
	logger *zap.Logger
}

// NewContact creates a new contact handler
func NewContact(svc contact.Service, logger *zap.Logger) *Contact {
	return &Contact{svc: svc, logger: logger}
}

// Meetings returns every meeting and every stored analysis for a contact,
// kept as two separate lists.
func (h *Contact) Meetings(c echo.Context) error {
	contactID := c.Param("contactId")
	if contactID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidInput("contactId path parameter is required"))
	}

	view, err := h.svc.ForContact(c.Request().Context(), contactID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := presenter.ToContactMeetingsResponse(view.ContactID, view.Meetings, view.Analyses)
	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}
