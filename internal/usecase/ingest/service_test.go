package ingest

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/pkg/hash"
)

type memTruthRepo struct {
	meetings map[string]*entities.Meeting
	appends  int
}

func newMemTruthRepo() *memTruthRepo {
	return &memTruthRepo{meetings: map[string]*entities.Meeting{}}
}

func (r *memTruthRepo) Append(ctx context.Context, m *entities.Meeting) error {
	r.appends++
	if _, exists := r.meetings[m.MeetingID]; exists {
		return entities.ErrMeetingExists
	}
	r.meetings[m.MeetingID] = m
	return nil
}

func (r *memTruthRepo) Get(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	m, ok := r.meetings[meetingID]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return m, nil
}

func (r *memTruthRepo) ListByContact(ctx context.Context, contactID string) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.ContactID == contactID {
			out = append(out, m)
		}
	}
	return out, nil
}

func operator() entities.RoleContext {
	return entities.RoleContext{UserID: "op-1", Role: entities.RoleOperator}
}

func validInput() Input {
	return Input{
		MeetingID:  "m-1",
		ContactID:  "c-1",
		Type:       "sales",
		OccurredAt: time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC),
		Transcript: "we discussed pricing and next steps",
	}
}

func TestIngest_Success(t *testing.T) {
	repo := newMemTruthRepo()
	svc := NewService(repo, nil)

	in := validInput()
	m, err := svc.Ingest(context.Background(), operator(), in)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if m.TranscriptHash != hash.SumString(in.Transcript) {
		t.Fatal("stored hash does not match transcript bytes")
	}
	if m.Type != entities.MeetingTypeSales {
		t.Fatalf("unexpected type %s", m.Type)
	}
	if _, err := repo.Get(context.Background(), "m-1"); err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
}

func TestIngest_ForbiddenForBasicRole(t *testing.T) {
	repo := newMemTruthRepo()
	svc := NewService(repo, nil)

	_, err := svc.Ingest(context.Background(), entities.RoleContext{UserID: "u", Role: entities.RoleBasic}, validInput())
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_FORBIDDEN {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
	if repo.appends != 0 {
		t.Fatal("forbidden ingest must not touch storage")
	}
}

func TestIngest_ValidationRejectsBeforeStorage(t *testing.T) {
	cases := map[string]func(*Input){
		"blank meeting id": func(in *Input) { in.MeetingID = "   " },
		"blank contact id": func(in *Input) { in.ContactID = "" },
		"empty transcript": func(in *Input) { in.Transcript = "" },
		"zero occurredAt":  func(in *Input) { in.OccurredAt = time.Time{} },
		"unknown type":     func(in *Input) { in.Type = "standup" },
		"capitalized type": func(in *Input) { in.Type = "Sales" },
	}

	for name, mutate := range cases {
		repo := newMemTruthRepo()
		svc := NewService(repo, nil)
		in := validInput()
		mutate(&in)

		_, err := svc.Ingest(context.Background(), operator(), in)
		var appErr errors.AppError
		if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_INVALID_INPUT {
			t.Fatalf("%s: expected INVALID_INPUT, got %v", name, err)
		}
		if repo.appends != 0 {
			t.Fatalf("%s: rejected ingest touched storage", name)
		}
	}
}

func TestIngest_DuplicateIDRejectedWhole(t *testing.T) {
	repo := newMemTruthRepo()
	svc := NewService(repo, nil)

	first := validInput()
	if _, err := svc.Ingest(context.Background(), operator(), first); err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}

	// Same id, different facts: the original record must survive untouched.
	second := validInput()
	second.Transcript = "a completely different transcript"
	second.Type = "coaching"

	_, err := svc.Ingest(context.Background(), operator(), second)
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_DUPLICATE_ID {
		t.Fatalf("expected DUPLICATE_ID, got %v", err)
	}

	stored, err := repo.Get(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("original record lost: %v", err)
	}
	if stored.Transcript != first.Transcript || stored.Type != entities.MeetingTypeSales {
		t.Fatal("duplicate ingest modified the original record")
	}
}
