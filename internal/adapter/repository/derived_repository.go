package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
)

// derivedRepository implements the DerivedRepository interface on Postgres.
// The unique index over the five cache-key columns is the last line of
// defense: even if a compute race slips past the per-key serialization, the
// database admits only one row per key.
type derivedRepository struct {
	db *gorm.DB
}

// NewDerivedRepository creates a new derived repository
func NewDerivedRepository(db *gorm.DB) repositories.DerivedRepository {
	return &derivedRepository{db: db}
}

// FindByKey looks up the row stored under a cache key
func (r *derivedRepository) FindByKey(ctx context.Context, key entities.CacheKey) (*entities.MeetingAnalysis, error) {
	var analysis entities.MeetingAnalysis
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND transcript_hash = ? AND schema_version = ? AND prompt_version = ? AND model = ?",
			key.MeetingID, key.TranscriptHash, key.SchemaVersion, key.PromptVersion, key.Model).
		First(&analysis).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Insert persists a new derived row, never overwriting an existing one
func (r *derivedRepository) Insert(ctx context.Context, analysis *entities.MeetingAnalysis) error {
	err := r.db.WithContext(ctx).Create(analysis).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrAnalysisExists
	}
	return err
}

// ListByContact retrieves a contact's analyses, most recent first
func (r *derivedRepository) ListByContact(ctx context.Context, contactID string) ([]*entities.MeetingAnalysis, error) {
	var analyses []*entities.MeetingAnalysis
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("analyzed_at DESC").
		Find(&analyses).Error
	return analyses, err
}
