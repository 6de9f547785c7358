package analysis

import (
	"fmt"
	"strings"
	"testing"
)

const validOutput = `{
  "topics": ["pricing", "onboarding"],
  "objections": ["budget freeze"],
  "commitments": ["send proposal by Friday"],
  "sentiment": "positive",
  "outcome": "follow_up",
  "summary": "Productive call; proposal requested."
}`

func TestParsePayload_Valid(t *testing.T) {
	p := NewParser()
	payload, err := p.ParsePayload(validOutput)
	if err != nil {
		t.Fatalf("valid output rejected: %v", err)
	}
	if len(payload.Topics) != 2 || payload.Topics[0] != "pricing" {
		t.Fatalf("topics not preserved: %v", payload.Topics)
	}
	if string(payload.Sentiment) != "positive" || string(payload.Outcome) != "follow_up" {
		t.Fatalf("enums not preserved: %s / %s", payload.Sentiment, payload.Outcome)
	}
}

func TestParsePayload_MarkdownFences(t *testing.T) {
	p := NewParser()
	for _, wrapped := range []string{
		"```json\n" + validOutput + "\n```",
		"```\n" + validOutput + "\n```",
		"  " + validOutput + "  ",
	} {
		if _, err := p.ParsePayload(wrapped); err != nil {
			t.Fatalf("fenced output rejected: %v", err)
		}
	}
}

func TestParsePayload_EmptyListsAllowed(t *testing.T) {
	p := NewParser()
	payload, err := p.ParsePayload(`{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"no_decision","summary":"Nothing decided."}`)
	if err != nil {
		t.Fatalf("empty lists rejected: %v", err)
	}
	if payload.Topics == nil || payload.Objections == nil || payload.Commitments == nil {
		t.Fatal("omitted lists must come back as empty, not nil")
	}
}

func TestParsePayload_MissingFields(t *testing.T) {
	p := NewParser()
	cases := map[string]string{
		"no sentiment":  `{"topics":[],"objections":[],"commitments":[],"outcome":"follow_up","summary":"x"}`,
		"no outcome":    `{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","summary":"x"}`,
		"no summary":    `{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"follow_up"}`,
		"empty summary": `{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"follow_up","summary":""}`,
		"not json":      `the meeting went well`,
	}
	for name, content := range cases {
		if _, err := p.ParsePayload(content); err == nil {
			t.Fatalf("%s: accepted invalid output", name)
		}
	}
}

func TestParsePayload_EnumOutsideClosedSet(t *testing.T) {
	p := NewParser()
	bad := []string{
		`{"topics":[],"objections":[],"commitments":[],"sentiment":"ecstatic","outcome":"follow_up","summary":"x"}`,
		`{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"won","summary":"x"}`,
	}
	for _, content := range bad {
		if _, err := p.ParsePayload(content); err == nil {
			t.Fatalf("accepted out-of-set enum: %s", content)
		}
	}
}

func TestParsePayload_SizeCapsRejectNotTruncate(t *testing.T) {
	p := NewParser()

	longSummary := strings.Repeat("a", maxSummaryLen+1)
	over := fmt.Sprintf(`{"topics":[],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"follow_up","summary":"%s"}`, longSummary)
	if _, err := p.ParsePayload(over); err == nil {
		t.Fatal("oversized summary accepted")
	}

	items := make([]string, maxListItems+1)
	for i := range items {
		items[i] = fmt.Sprintf(`"t%d"`, i)
	}
	overList := fmt.Sprintf(`{"topics":[%s],"objections":[],"commitments":[],"sentiment":"neutral","outcome":"follow_up","summary":"x"}`, strings.Join(items, ","))
	if _, err := p.ParsePayload(overList); err == nil {
		t.Fatal("oversized topics list accepted")
	}
}
