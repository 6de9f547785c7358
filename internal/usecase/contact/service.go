package contact

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
)

// View is the read-model result: both layers fetched independently and
// returned unmerged. The presentation side pairs a meeting with its analyses
// by meetingId, since a meeting may carry zero, one, or several analyses
// across schema/prompt changes.
type View struct {
	ContactID string
	Meetings  []*entities.Meeting
	Analyses  []*entities.MeetingAnalysis
}

// Service is the pure read-side join over the truth and derived stores.
type Service interface {
	ForContact(ctx context.Context, contactID string) (*View, error)
}

type service struct {
	truthRepo   repositories.TruthRepository
	derivedRepo repositories.DerivedRepository
	logger      *zap.Logger
}

// NewService constructs the contact read model
func NewService(truthRepo repositories.TruthRepository, derivedRepo repositories.DerivedRepository, logger *zap.Logger) Service {
	return &service{truthRepo: truthRepo, derivedRepo: derivedRepo, logger: logger}
}

// ForContact fetches a contact's meetings (chronological) and analyses. An
// analysis row whose meeting has no truth record is a data-integrity bug; it
// is reported, never papered over with a fabricated meeting.
func (s *service) ForContact(ctx context.Context, contactID string) (*View, error) {
	meetings, err := s.truthRepo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	analyses, err := s.derivedRepo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	known := make(map[string]struct{}, len(meetings))
	for _, m := range meetings {
		known[m.MeetingID] = struct{}{}
	}
	for _, a := range analyses {
		if _, ok := known[a.MeetingID]; !ok {
			if s.logger != nil {
				s.logger.Error("derived row without truth record",
					zap.String("contact_id", contactID),
					zap.String("meeting_id", a.MeetingID),
				)
			}
			return nil, apperrors.ErrInconsistentRead(a.MeetingID)
		}
	}

	return &View{
		ContactID: contactID,
		Meetings:  meetings,
		Analyses:  analyses,
	}, nil
}
