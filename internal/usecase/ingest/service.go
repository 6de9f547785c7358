package ingest

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
	"github.com/truthos/meeting-intelligence/pkg/hash"
)

// Input carries the caller-supplied meeting facts. Identifiers are opaque
// strings owned by the caller.
type Input struct {
	MeetingID  string
	ContactID  string
	Type       string
	OccurredAt time.Time
	Transcript string
}

// Service is the write path into the truth store.
type Service interface {
	Ingest(ctx context.Context, rc entities.RoleContext, in Input) (*entities.Meeting, error)
}

type service struct {
	truthRepo repositories.TruthRepository
	logger    *zap.Logger
}

// NewService constructs the ingest service
func NewService(truthRepo repositories.TruthRepository, logger *zap.Logger) Service {
	return &service{truthRepo: truthRepo, logger: logger}
}

// Ingest validates and appends one immutable truth record. Validation happens
// before anything touches storage, so a rejected ingest persists nothing; a
// duplicate id is rejected whole, never merged into the existing record.
func (s *service) Ingest(ctx context.Context, rc entities.RoleContext, in Input) (*entities.Meeting, error) {
	if !rc.CanWrite() {
		return nil, apperrors.ErrForbidden("ingest meeting")
	}

	if strings.TrimSpace(in.MeetingID) == "" {
		return nil, apperrors.ErrInvalidInput("meetingId is required")
	}
	if strings.TrimSpace(in.ContactID) == "" {
		return nil, apperrors.ErrInvalidInput("contactId is required")
	}
	if in.Transcript == "" {
		return nil, apperrors.ErrInvalidInput("transcript must be non-empty")
	}
	if in.OccurredAt.IsZero() {
		return nil, apperrors.ErrInvalidInput("occurredAt is required")
	}

	mtype, err := entities.ParseMeetingType(in.Type)
	if err != nil {
		return nil, apperrors.ErrInvalidInput("type must be one of: sales, coaching")
	}

	meeting := entities.NewMeeting(
		in.MeetingID,
		in.ContactID,
		mtype,
		in.OccurredAt,
		in.Transcript,
		hash.SumString(in.Transcript),
	)

	if err := s.truthRepo.Append(ctx, meeting); err != nil {
		if errors.Is(err, entities.ErrMeetingExists) {
			return nil, apperrors.ErrDuplicateMeeting(in.MeetingID)
		}
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("truth record appended",
			zap.String("meeting_id", meeting.MeetingID),
			zap.String("contact_id", meeting.ContactID),
			zap.String("transcript_hash", meeting.TranscriptHash),
			zap.String("ingested_by", rc.UserID),
		)
	}

	return meeting, nil
}
