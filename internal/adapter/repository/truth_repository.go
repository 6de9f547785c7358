package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
)

// truthRepository implements the TruthRepository interface on Postgres. The
// meeting id primary key makes ingest uniqueness atomic: two concurrent
// appends with the same id resolve to one winner and one ErrMeetingExists.
type truthRepository struct {
	db *gorm.DB
}

// NewTruthRepository creates a new truth repository
func NewTruthRepository(db *gorm.DB) repositories.TruthRepository {
	return &truthRepository{db: db}
}

// Append inserts a new truth record
func (r *truthRepository) Append(ctx context.Context, meeting *entities.Meeting) error {
	err := r.db.WithContext(ctx).Create(meeting).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrMeetingExists
	}
	return err
}

// Get retrieves a meeting by its ID
func (r *truthRepository) Get(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&meeting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListByContact retrieves a contact's meetings in chronological order
func (r *truthRepository) ListByContact(ctx context.Context, contactID string) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("occurred_at ASC, created_at ASC").
		Find(&meetings).Error
	return meetings, err
}
