package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/answerit/ai"
)

const answerResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "answer": {
      "type": "string"
    },
    "reasoning": {
      "type": "string"
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    }
  },
  "required": ["answer", "reasoning", "confidence"],
  "additionalProperties": false
}`

const answerSystemPrompt = `You answer a user's question and return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "answer" is the direct answer to the question, one to three sentences, no filler.
- "reasoning" briefly states how you arrived at the answer.
- "confidence" is your own reliability estimate from 0.0 (guess) to 1.0 (certain).
- If similar stored questions are provided, prefer an answer consistent with them.
- If you cannot answer, set "answer" to an empty string and "confidence" to 0.0.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "What is the capital of France?"
Output:
{"answer":"Paris","reasoning":"Well-known geographical fact.","confidence":0.98}`

// buildSystemPrompt creates the system prompt with the response schema embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(answerSystemPrompt, answerResponseSchema)
}

// buildUserPrompt renders the question together with its keywords and the
// closest local candidates.
func buildUserPrompt(req *ai.AnswerRequest, maxCandidates int) string {
	var b strings.Builder

	b.WriteString("Question: ")
	b.WriteString(req.Question)
	b.WriteString("\n")

	if len(req.Keywords) > 0 {
		words := make([]string, 0, len(req.Keywords))
		for _, kw := range req.Keywords {
			words = append(words, kw.Word)
		}
		b.WriteString("Key terms: ")
		b.WriteString(strings.Join(words, ", "))
		b.WriteString("\n")
	}

	candidates := req.Candidates
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	if len(candidates) > 0 {
		b.WriteString("Similar stored questions:\n")
		for _, doc := range candidates {
			fmt.Fprintf(&b, "- Q: %s\n  A: %s\n", doc.Question, doc.Answer)
		}
	}

	return b.String()
}
