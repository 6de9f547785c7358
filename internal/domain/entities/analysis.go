package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sentiment is the closed sentiment set for derived analyses.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment rejects values outside the closed set.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s), nil
	}
	return "", ErrInvalidSentiment
}

// Outcome is the closed outcome set for derived analyses.
type Outcome string

const (
	OutcomeClosedWon  Outcome = "closed_won"
	OutcomeClosedLost Outcome = "closed_lost"
	OutcomeFollowUp   Outcome = "follow_up"
	OutcomeNoDecision Outcome = "no_decision"
)

// ParseOutcome rejects values outside the closed set.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeClosedWon, OutcomeClosedLost, OutcomeFollowUp, OutcomeNoDecision:
		return Outcome(s), nil
	}
	return "", ErrInvalidOutcome
}

// AnalysisPayload is the machine-derived content of one analysis. Sentiment
// and outcome only ever hold values accepted by their Parse constructors.
type AnalysisPayload struct {
	Topics      datatypes.JSONSlice[string] `json:"topics" gorm:"type:jsonb"`
	Objections  datatypes.JSONSlice[string] `json:"objections" gorm:"type:jsonb"`
	Commitments datatypes.JSONSlice[string] `json:"commitments" gorm:"type:jsonb"`
	Sentiment   Sentiment                   `json:"sentiment" gorm:"type:varchar(20);not null"`
	Outcome     Outcome                     `json:"outcome" gorm:"type:varchar(20);not null"`
	Summary     string                      `json:"summary" gorm:"type:text;not null"`
}

// CacheKey uniquely identifies one derived analysis. Equal keys always resolve
// to the same stored row; any component change means a new row, never an
// update of an old one.
type CacheKey struct {
	MeetingID      string
	TranscriptHash string
	SchemaVersion  string
	PromptVersion  string
	Model          string
}

// String returns the canonical form used for per-key serialization and as the
// redis cache key.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", k.MeetingID, k.TranscriptHash, k.SchemaVersion, k.PromptVersion, k.Model)
}

// MeetingAnalysis is a derived record: reproducible, traceable to the exact
// input hash and model/prompt version that produced it, and immutable once
// inserted. A meeting accumulates one row per distinct cache key ever
// requested.
type MeetingAnalysis struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MeetingID      string    `json:"meetingId" gorm:"column:meeting_id;type:varchar(255);not null;uniqueIndex:idx_analysis_cache_key"`
	ContactID      string    `json:"contactId" gorm:"column:contact_id;type:varchar(255);not null;index"`
	TranscriptHash string    `json:"transcriptHash" gorm:"type:varchar(64);not null;uniqueIndex:idx_analysis_cache_key"`
	SchemaVersion  string    `json:"schemaVersion" gorm:"type:varchar(20);not null;uniqueIndex:idx_analysis_cache_key"`
	PromptVersion  string    `json:"promptVersion" gorm:"type:varchar(20);not null;uniqueIndex:idx_analysis_cache_key"`
	Model          string    `json:"model" gorm:"type:varchar(100);not null;uniqueIndex:idx_analysis_cache_key"`
	AnalyzedAt     time.Time `json:"analyzedAt" gorm:"not null"`
	Payload        AnalysisPayload `json:"derived" gorm:"embedded"`
}

// TableName specifies the table name for GORM
func (MeetingAnalysis) TableName() string {
	return "meeting_analysis_derived"
}

// CacheKey reconstructs the key this row was stored under.
func (a *MeetingAnalysis) CacheKey() CacheKey {
	return CacheKey{
		MeetingID:      a.MeetingID,
		TranscriptHash: a.TranscriptHash,
		SchemaVersion:  a.SchemaVersion,
		PromptVersion:  a.PromptVersion,
		Model:          a.Model,
	}
}

// NewMeetingAnalysis binds a validated payload to its cache key. ContactID is
// denormalized from the referenced meeting for read-side grouping.
func NewMeetingAnalysis(key CacheKey, contactID string, payload AnalysisPayload) *MeetingAnalysis {
	return &MeetingAnalysis{
		ID:             uuid.New(),
		MeetingID:      key.MeetingID,
		ContactID:      contactID,
		TranscriptHash: key.TranscriptHash,
		SchemaVersion:  key.SchemaVersion,
		PromptVersion:  key.PromptVersion,
		Model:          key.Model,
		AnalyzedAt:     time.Now().UTC(),
		Payload:        payload,
	}
}
