package analysis

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/internal/domain/repositories"
)

// DerivedStore is the idempotent write path for derived analyses: at most one
// compute and at most one row per cache key, with concurrent callers for the
// same key all observing the winner's row.
type DerivedStore struct {
	repo  repositories.DerivedRepository
	group singleflight.Group
}

// NewDerivedStore wraps a derived repository with per-key serialization.
func NewDerivedStore(repo repositories.DerivedRepository) *DerivedStore {
	return &DerivedStore{repo: repo}
}

// GetOrCompute returns the row for key, computing and persisting it first if
// absent. compute runs at most once per key within this process; the unique
// index backs that up across processes, and an insert lost to a cross-process
// race is resolved by reading back the winner's row. When compute fails,
// nothing is persisted — the absent row is the failure signal, so a later
// call can retry cleanly.
func (s *DerivedStore) GetOrCompute(ctx context.Context, key entities.CacheKey, contactID string, compute func(context.Context) (entities.AnalysisPayload, error)) (*entities.MeetingAnalysis, error) {
	v, err, _ := s.group.Do(key.String(), func() (interface{}, error) {
		existing, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}

		payload, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		row := entities.NewMeetingAnalysis(key, contactID, payload)
		if err := s.repo.Insert(ctx, row); err != nil {
			if errors.Is(err, entities.ErrAnalysisExists) {
				winner, findErr := s.repo.FindByKey(ctx, key)
				if findErr != nil {
					return nil, findErr
				}
				if winner == nil {
					return nil, fmt.Errorf("analysis row vanished after duplicate-key insert for %s", key.String())
				}
				return winner, nil
			}
			return nil, err
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.MeetingAnalysis), nil
}

// ListByContact exposes the read side used by the contact read model.
func (s *DerivedStore) ListByContact(ctx context.Context, contactID string) ([]*entities.MeetingAnalysis, error) {
	return s.repo.ListByContact(ctx, contactID)
}
