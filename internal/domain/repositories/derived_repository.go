package repositories

import (
	"context"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

// DerivedRepository stores machine-derived analyses, at most one row per
// cache key. Rows are inserted once and never updated; a changed model or
// prompt version produces a new row under a new key.
type DerivedRepository interface {
	// FindByKey returns the row for key, or (nil, nil) when absent.
	FindByKey(ctx context.Context, key entities.CacheKey) (*entities.MeetingAnalysis, error)

	// Insert persists a new derived row. A row already present under the same
	// cache key yields entities.ErrAnalysisExists and leaves the existing row
	// untouched.
	Insert(ctx context.Context, analysis *entities.MeetingAnalysis) error

	// ListByContact returns the contact's analyses, most recent first.
	ListByContact(ctx context.Context, contactID string) ([]*entities.MeetingAnalysis, error)
}
