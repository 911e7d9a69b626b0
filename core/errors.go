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


package core

import "errors"

// Domain validation errors
var (
	// ErrQueryEmpty indicates an empty or too-short query.
	ErrQueryEmpty = errors.New("query is empty or too short")

	// ErrQueryTooLong indicates a query exceeding the maximum length.
	ErrQueryTooLong = errors.New("query is too long")

	// ErrInvalidInput indicates malformed caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidQAPair indicates a QAPair failed validation.
	ErrInvalidQAPair = errors.New("invalid question/answer pair")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyQuestion indicates the question text is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer indicates the answer text is empty.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrInvalidSourceLine indicates a negative source line number.
	ErrInvalidSourceLine = errors.New("source line cannot be negative")

	// ErrImportanceOutOfRange indicates a keyword importance outside [0,1].
	ErrImportanceOutOfRange = errors.New("keyword importance must be in [0,1]")
)
