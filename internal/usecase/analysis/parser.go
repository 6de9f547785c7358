package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

const (
	maxListItems  = 25
	maxSummaryLen = 1200
)

// Parser validates raw LLM output against the fixed analysis schema. Anything
// outside the contract is rejected, never coerced into a default.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// rawPayload mirrors the contracted JSON schema with open string enums so the
// closed-set constructors can reject out-of-range values explicitly.
type rawPayload struct {
	Topics      []string `json:"topics"`
	Objections  []string `json:"objections"`
	Commitments []string `json:"commitments"`
	Sentiment   *string  `json:"sentiment"`
	Outcome     *string  `json:"outcome"`
	Summary     *string  `json:"summary"`
}

// ParsePayload parses and validates one completion into an AnalysisPayload.
func (p *Parser) ParsePayload(content string) (entities.AnalysisPayload, error) {
	content = extractJSON(content)

	var raw rawPayload
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return entities.AnalysisPayload{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if raw.Sentiment == nil {
		return entities.AnalysisPayload{}, fmt.Errorf("missing sentiment in response")
	}
	if raw.Outcome == nil {
		return entities.AnalysisPayload{}, fmt.Errorf("missing outcome in response")
	}
	if raw.Summary == nil || *raw.Summary == "" {
		return entities.AnalysisPayload{}, fmt.Errorf("missing summary in response")
	}

	sentiment, err := entities.ParseSentiment(*raw.Sentiment)
	if err != nil {
		return entities.AnalysisPayload{}, fmt.Errorf("sentiment %q outside allowed set", *raw.Sentiment)
	}
	outcome, err := entities.ParseOutcome(*raw.Outcome)
	if err != nil {
		return entities.AnalysisPayload{}, fmt.Errorf("outcome %q outside allowed set", *raw.Outcome)
	}

	if len(*raw.Summary) > maxSummaryLen {
		return entities.AnalysisPayload{}, fmt.Errorf("summary exceeds %d characters", maxSummaryLen)
	}
	for _, field := range []struct {
		name  string
		items []string
	}{
		{"topics", raw.Topics},
		{"objections", raw.Objections},
		{"commitments", raw.Commitments},
	} {
		if len(field.items) > maxListItems {
			return entities.AnalysisPayload{}, fmt.Errorf("%s exceeds %d items", field.name, maxListItems)
		}
	}

	return entities.AnalysisPayload{
		Topics:      emptyIfNil(raw.Topics),
		Objections:  emptyIfNil(raw.Objections),
		Commitments: emptyIfNil(raw.Commitments),
		Sentiment:   sentiment,
		Outcome:     outcome,
		Summary:     *raw.Summary,
	}, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
