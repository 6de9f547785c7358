package presenter

import (
	"github.com/truthos/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

// ToMeetingResponse converts a truth record to its response shape
func ToMeetingResponse(m *entities.Meeting) meeting.MeetingResponse {
	return meeting.MeetingResponse{
		MeetingID:      m.MeetingID,
		ContactID:      m.ContactID,
		Type:           string(m.Type),
		OccurredAt:     m.OccurredAt,
		Transcript:     m.Transcript,
		TranscriptHash: m.TranscriptHash,
		CreatedAt:      m.CreatedAt,
	}
}

// ToAnalysisResponse converts a derived row to its response shape
func ToAnalysisResponse(a *entities.MeetingAnalysis) meeting.AnalysisResponse {
	return meeting.AnalysisResponse{
		MeetingID:      a.MeetingID,
		ContactID:      a.ContactID,
		TranscriptHash: a.TranscriptHash,
		SchemaVersion:  a.SchemaVersion,
		PromptVersion:  a.PromptVersion,
		Model:          a.Model,
		AnalyzedAt:     a.AnalyzedAt,
		Derived: meeting.AnalysisPayloadResponse{
			Topics:      a.Payload.Topics,
			Objections:  a.Payload.Objections,
			Commitments: a.Payload.Commitments,
			Sentiment:   string(a.Payload.Sentiment),
			Outcome:     string(a.Payload.Outcome),
			Summary:     a.Payload.Summary,
		},
	}
}

// ToTruthRef builds the truth reference carried alongside an analysis
func ToTruthRef(m *entities.Meeting) meeting.TruthRef {
	return meeting.TruthRef{
		MeetingID:      m.MeetingID,
		ContactID:      m.ContactID,
		TranscriptHash: m.TranscriptHash,
	}
}

// ToContactMeetingsResponse builds the unmerged read-model response. Empty
// result sets marshal as empty arrays, not null.
func ToContactMeetingsResponse(contactID string, meetings []*entities.Meeting, analyses []*entities.MeetingAnalysis) meeting.ContactMeetingsResponse {
	resp := meeting.ContactMeetingsResponse{
		ContactID: contactID,
		Meetings:  make([]meeting.MeetingResponse, 0, len(meetings)),
		Analyses:  make([]meeting.AnalysisResponse, 0, len(analyses)),
	}
	for _, m := range meetings {
		resp.Meetings = append(resp.Meetings, ToMeetingResponse(m))
	}
	for _, a := range analyses {
		resp.Analyses = append(resp.Analyses, ToAnalysisResponse(a))
	}
	return resp
}
