package entities

import (
	"time"
)

// MeetingType is the closed set of meeting kinds the truth store accepts.
type MeetingType string

const (
	MeetingTypeSales    MeetingType = "sales"
	MeetingTypeCoaching MeetingType = "coaching"
)

// ParseMeetingType rejects unknown values at the boundary so no other value
// can ever reach a persisted record.
func ParseMeetingType(s string) (MeetingType, error) {
	switch MeetingType(s) {
	case MeetingTypeSales, MeetingTypeCoaching:
		return MeetingType(s), nil
	}
	return "", ErrInvalidMeetingType
}

// Meeting is an immutable truth record of an observed meeting. Once written it
// is never updated or deleted; the repository interface exposes no operation
// that could do either.
type Meeting struct {
	MeetingID      string      `json:"meetingId" gorm:"column:meeting_id;type:varchar(255);primaryKey"`
	ContactID      string      `json:"contactId" gorm:"column:contact_id;type:varchar(255);not null;index"`
	Type           MeetingType `json:"type" gorm:"type:varchar(20);not null"`
	OccurredAt     time.Time   `json:"occurredAt" gorm:"not null"`
	Transcript     string      `json:"transcript" gorm:"type:text;not null"`
	TranscriptHash string      `json:"transcriptHash" gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings_truth"
}

// NewMeeting builds a truth record from already-validated inputs. The
// transcript hash is supplied by the caller so the record and any derived rows
// always agree on the fingerprint of the same bytes.
func NewMeeting(meetingID, contactID string, mtype MeetingType, occurredAt time.Time, transcript, transcriptHash string) *Meeting {
	return &Meeting{
		MeetingID:      meetingID,
		ContactID:      contactID,
		Type:           mtype,
		OccurredAt:     occurredAt.UTC(),
		Transcript:     transcript,
		TranscriptHash: transcriptHash,
		CreatedAt:      time.Now().UTC(),
	}
}
