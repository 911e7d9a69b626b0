package ai

import "github.com/poiesic/answerit/core"

// AnswerRequest carries everything the generator may use to answer a
// question: the original query text, its extracted keywords, and the local
// candidates that came closest without meeting the confidence threshold.
type AnswerRequest struct {
	// Question is the original, unnormalized query text.
	Question string

	// Keywords are the query's extracted keywords, ordered by importance.
	Keywords []core.Keyword

	// Candidates are the closest local documents, if any. May be empty.
	Candidates []*core.Document
}

// GeneratedAnswer is the generator's response.
type GeneratedAnswer struct {
	// Answer is the generated answer text.
	Answer string

	// Reasoning is a short explanation of how the answer was derived.
	Reasoning string

	// Confidence is the generator's self-assessed reliability in [0,1].
	Confidence float64
}
