package meeting

import (
	"time"
)

// MeetingResponse mirrors one immutable truth record. transcriptHash is
// always present so any client can verify reproducibility independently.
type MeetingResponse struct {
	MeetingID      string    `json:"meetingId"`
	ContactID      string    `json:"contactId"`
	Type           string    `json:"type"`
	OccurredAt     time.Time `json:"occurredAt"`
	Transcript     string    `json:"transcript"`
	TranscriptHash string    `json:"transcriptHash"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AnalysisPayloadResponse is the derived content of one analysis.
type AnalysisPayloadResponse struct {
	Topics      []string `json:"topics"`
	Objections  []string `json:"objections"`
	Commitments []string `json:"commitments"`
	Sentiment   string   `json:"sentiment"`
	Outcome     string   `json:"outcome"`
	Summary     string   `json:"summary"`
}

// AnalysisResponse mirrors one derived row with its full provenance:
// input hash plus schema/prompt/model versions.
type AnalysisResponse struct {
	MeetingID      string                  `json:"meetingId"`
	ContactID      string                  `json:"contactId"`
	TranscriptHash string                  `json:"transcriptHash"`
	SchemaVersion  string                  `json:"schemaVersion"`
	PromptVersion  string                  `json:"promptVersion"`
	Model          string                  `json:"model"`
	AnalyzedAt     time.Time               `json:"analyzedAt"`
	Derived        AnalysisPayloadResponse `json:"derived"`
}

// IngestResponse is the 201 body for POST /v1/meetings.
type IngestResponse struct {
	Truth   MeetingResponse   `json:"truth"`
	Derived *AnalysisResponse `json:"derived"`
	Note    string            `json:"note"`
}

// TruthRef points an analysis response back at its truth record.
type TruthRef struct {
	MeetingID      string `json:"meetingId"`
	ContactID      string `json:"contactId"`
	TranscriptHash string `json:"transcriptHash"`
}

// AnalyzeResponse is the 200 body for POST /v1/meetings/:meetingId/analyze.
type AnalyzeResponse struct {
	TruthRef TruthRef         `json:"truth_ref"`
	Analysis AnalysisResponse `json:"analysis"`
	Note     string           `json:"note"`
}

// ContactMeetingsResponse is the 200 body for GET /v1/contacts/:contactId/meetings.
// Meetings and analyses are returned unmerged; clients pair them by meetingId.
type ContactMeetingsResponse struct {
	ContactID string             `json:"contactId"`
	Meetings  []MeetingResponse  `json:"meetings"`
	Analyses  []AnalysisResponse `json:"analyses"`
}
