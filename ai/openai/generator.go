// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/answerit/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// AnswerGenerator implements ai.AnswerGenerator using OpenAI-compatible chat APIs.
type AnswerGenerator struct {
	client        llms.Model
	timeout       time.Duration
	maxCandidates int
	logger        *slog.Logger
}

// generatedAnswer is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type generatedAnswer struct {
	Answer     string  `json:"answer"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

// newAnswerGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAnswerGenerator(config *ai.Config) (*AnswerGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &AnswerGenerator{
		client:        client,
		timeout:       config.Timeout,
		maxCandidates: config.MaxCandidates,
		logger:        slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewAnswerGenerator creates a new answer generator using the provided
// configuration.
//
// Returns ai.AnswerGenerator interface to enforce abstraction.
func NewAnswerGenerator(config *ai.Config) (ai.AnswerGenerator, error) {
	return newAnswerGenerator(config)
}

// GenerateAnswer produces an answer for the request's question using an LLM.
func (g *AnswerGenerator) GenerateAnswer(ctx context.Context, req *ai.AnswerRequest) (*ai.GeneratedAnswer, error) {
	// Attach the configured deadline unless the caller already set one
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(req, g.maxCandidates)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result generatedAnswer
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			g.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", ai.ErrRemoteTimeout, err)
			}
			return nil, fmt.Errorf("%w: %w", ai.ErrRemoteUpstream, err)
		}

		if len(response.Choices) < 1 {
			g.logger.Debug("no choices returned from model")
			return nil, fmt.Errorf("%w: empty response", ai.ErrMalformedResponse)
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			g.logger.Warn("error parsing generator response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		g.logger.Error("failed to parse generator response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, lastErr)
	}

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	g.logger.Debug("generated answer",
		"confidence", result.Confidence,
		"answer_len", len(result.Answer))

	return &ai.GeneratedAnswer{
		Answer:     strings.TrimSpace(result.Answer),
		Reasoning:  strings.TrimSpace(result.Reasoning),
		Confidence: result.Confidence,
	}, nil
}
