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


// Package match implements the tiered question-matching cascade.
//
// A query runs through up to five tiers in order of decreasing precision:
// exact normalized-text lookup, keyword-set overlap, fuzzy string
// similarity, partial substring containment, and finally remote answer
// generation. The first tier producing a match at or above the caller's
// minimum confidence wins and later tiers are never evaluated.
//
// Every tier reports a raw similarity score in [0,1] plus a unified
// confidence derived from it, so results are comparable across tiers.
// Successful results are memoized in a bounded, TTL-expiring query cache.
//
// # Usage
//
//	engine, err := match.NewEngine(repo, match.WithGenerator(generator))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.FindAnswer(ctx, "What is the capital of France?", match.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Success {
//	    fmt.Println(result.Match.Document.Answer)
//	}
package match
