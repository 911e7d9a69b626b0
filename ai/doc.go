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


// Package ai defines the remote answer-generation abstraction used as the
// last tier of the matching cascade.
//
// The core treats generation as a typed, cancellable function call: build an
// AnswerRequest, pass a context with a deadline, receive a GeneratedAnswer
// or an error. Nothing in this package assumes a particular transport.
//
// Subpackage openai implements the interfaces against OpenAI-compatible chat
// APIs (Ollama, LocalAI, vLLM, OpenAI itself). Subpackage mock provides test
// doubles with injectable behavior and call counting.
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"), ai.WithModel("qwen2.5:3b"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	answer, err := provider.AnswerGenerator().GenerateAnswer(ctx, req)
package ai
