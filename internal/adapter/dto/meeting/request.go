package meeting

import (
	"time"
)

// IngestMeetingRequest is the body for POST /v1/meetings. Identifiers are
// caller-supplied opaque strings; occurredAt must be RFC 3339.
type IngestMeetingRequest struct {
	MeetingID  string    `json:"meetingId" validate:"required,opaqueid"`
	ContactID  string    `json:"contactId" validate:"required,opaqueid"`
	Type       string    `json:"type" validate:"required,oneof=sales coaching"`
	OccurredAt time.Time `json:"occurredAt" validate:"required"`
	Transcript string    `json:"transcript" validate:"required,min=1"`
}
