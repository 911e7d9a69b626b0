package ai

import "context"

// AnswerGenerator produces an answer for a question that local matching
// could not satisfy. Implementations must be thread-safe for concurrent use.
type AnswerGenerator interface {
	// GenerateAnswer produces an answer for the request's question, guided
	// by its extracted keywords and the nearest local candidates. The call
	// honors ctx cancellation and deadlines; one slow call must not stall
	// concurrent queries.
	// Returns an error if generation fails or the context expires.
	GenerateAnswer(ctx context.Context, req *AnswerRequest) (*GeneratedAnswer, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// AnswerGenerator returns the answer generation service.
	// The returned AnswerGenerator is safe for concurrent use.
	AnswerGenerator() AnswerGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
