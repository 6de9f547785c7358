package analysis

import "fmt"

// The prompt text is pinned by the prompt version recorded on every derived
// row; changing the wording here requires bumping ANALYSIS_PROMPT_VERSION so
// old and new analyses stay distinguishable.

const systemPrompt = "You are an analysis extraction agent. " +
	"You must output ONLY valid JSON that matches the required schema. " +
	"No prose, no markdown, no extra keys."

const userPromptFormat = `Extract structured sales/coaching signals from the transcript.

Schema (JSON object):
{
  "topics": string[],
  "objections": string[],
  "commitments": string[],
  "sentiment": "positive"|"neutral"|"negative",
  "outcome": "closed_won"|"closed_lost"|"follow_up"|"no_decision",
  "summary": string
}

Constraints:
- Keep each list <= 10 items
- Summary <= 600 characters

Transcript:
%s`

func buildUserPrompt(transcript string) string {
	return fmt.Sprintf(userPromptFormat, transcript)
}
