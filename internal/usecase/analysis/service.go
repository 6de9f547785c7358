package analysis

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
	"github.com/truthos/meeting-intelligence/pkg/config"
)

// Service orchestrates one analyze call: load the truth record, build the
// cache key, and let the derived store decide whether the agent runs at all.
type Service interface {
	Analyze(ctx context.Context, rc entities.RoleContext, meetingID string) (*entities.Meeting, *entities.MeetingAnalysis, error)
}

type service struct {
	truthRepo     repositories.TruthRepository
	store         *DerivedStore
	agent         *Agent
	schemaVersion string
	promptVersion string
	logger        *zap.Logger
}

// NewService constructs the analysis service
func NewService(truthRepo repositories.TruthRepository, store *DerivedStore, agent *Agent, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		truthRepo:     truthRepo,
		store:         store,
		agent:         agent,
		schemaVersion: cfg.Analysis.SchemaVersion,
		promptVersion: cfg.Analysis.PromptVersion,
		logger:        logger,
	}
}

// Analyze runs or replays the analysis for a meeting. Truth is read, never
// touched; an aborted or failed analyze leaves no observable effect.
func (s *service) Analyze(ctx context.Context, rc entities.RoleContext, meetingID string) (*entities.Meeting, *entities.MeetingAnalysis, error) {
	if !rc.CanWrite() {
		return nil, nil, apperrors.ErrForbidden("analyze meeting")
	}

	meeting, err := s.truthRepo.Get(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, nil, apperrors.ErrNotFound("Meeting").WithDetail("meeting_id", meetingID)
		}
		return nil, nil, apperrors.ErrInternal(err)
	}

	key := entities.CacheKey{
		MeetingID:      meeting.MeetingID,
		TranscriptHash: meeting.TranscriptHash,
		SchemaVersion:  s.schemaVersion,
		PromptVersion:  s.promptVersion,
		Model:          s.agent.Model(),
	}

	row, err := s.store.GetOrCompute(ctx, key, meeting.ContactID, func(ctx context.Context) (entities.AnalysisPayload, error) {
		if s.logger != nil {
			s.logger.Info("computing analysis",
				zap.String("meeting_id", meeting.MeetingID),
				zap.String("transcript_hash", meeting.TranscriptHash),
				zap.String("model", s.agent.Model()),
				zap.String("requested_by", rc.UserID),
			)
		}
		return s.agent.Run(ctx, meeting.Transcript)
	})
	if err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, nil, appErr
		}
		return nil, nil, apperrors.ErrInternal(err)
	}

	return meeting, row, nil
}
