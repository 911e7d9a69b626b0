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


// Package storage provides the storage abstraction layer for answerit.
//
// This package defines repository interfaces that decouple storage
// implementation from the matching logic. Different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the interfaces defined
// here:
//
//	repo, err := badger.NewDocumentRepository(backend)  // storage.DocumentRepository
//
// Internal constructors may return concrete types since they are only used
// within the implementation package.
//
// # Inverted Keyword Index
//
// Besides the primary record keyed by document ID, implementations maintain
// two secondary indices: one from normalized question text to document ID
// (backing exact-match lookup) and an inverted index from each keyword word
// to every document containing it (backing keyword-overlap lookup). Both
// indices must preserve document identity across concurrent queries.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. Reads observe a consistent snapshot taken
// at call time.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
