package repositories

import (
	"context"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

// TruthRepository is the append-only persistence interface for meeting facts.
// There is deliberately no update or delete: immutability is enforced at the
// type level, not by convention.
type TruthRepository interface {
	// Append inserts a new truth record. A meeting id that already exists
	// yields entities.ErrMeetingExists with no partial write.
	Append(ctx context.Context, meeting *entities.Meeting) error

	// Get returns the record for meetingID or entities.ErrMeetingNotFound.
	Get(ctx context.Context, meetingID string) (*entities.Meeting, error)

	// ListByContact returns the contact's meetings ordered by occurredAt
	// ascending, ties broken by createdAt.
	ListByContact(ctx context.Context, contactID string) ([]*entities.Meeting, error)
}
