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


package mock

import (
	"context"
	"sync"

	"github.com/poiesic/answerit/ai"
)

// MockAnswerGenerator is a test double for ai.AnswerGenerator.
// Behavior is injectable via GenerateAnswerFunc; calls are counted.
type MockAnswerGenerator struct {
	// GenerateAnswerFunc overrides the default canned behavior when set.
	GenerateAnswerFunc func(ctx context.Context, req *ai.AnswerRequest) (*ai.GeneratedAnswer, error)

	mu        sync.Mutex
	callCount int
}

// NewMockAnswerGenerator creates a mock generator with default canned output.
func NewMockAnswerGenerator() *MockAnswerGenerator {
	return &MockAnswerGenerator{}
}

// GenerateAnswer records the call and delegates to GenerateAnswerFunc when
// set, otherwise returns a canned answer.
func (m *MockAnswerGenerator) GenerateAnswer(ctx context.Context, req *ai.AnswerRequest) (*ai.GeneratedAnswer, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, req)
	}

	return &ai.GeneratedAnswer{
		Answer:     "mock answer for: " + req.Question,
		Reasoning:  "canned mock response",
		Confidence: 0.5,
	}, nil
}

// CallCount returns the number of GenerateAnswer invocations.
func (m *MockAnswerGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count.
func (m *MockAnswerGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
}
