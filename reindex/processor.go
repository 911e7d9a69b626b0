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


package reindex

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/storage"
)

// BatchResult summarizes the outcome of processing one batch.
type BatchResult struct {
	Updated int // rewritten in place with recomputed fields
	Rekeyed int // moved to a new content-derived ID
	Failed  int // could not be reprocessed or stored
}

// BatchProcessor recomputes derived fields for batches of stored documents.
type BatchProcessor struct {
	repo           storage.DocumentRepository
	proc           *ingestion.Processor
	maxRetries     int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for storage operations
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.DocumentRepository, proc *ingestion.Processor, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		proc:           proc,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
		logger:         slog.Default().With("component", "reindex"),
	}
}

// Process recomputes derived fields for a batch of documents and rewrites
// the ones that changed. Documents whose normalized question moved to a new
// content-derived ID are deleted under the old ID and re-added.
//
// Per-document failures are counted and logged but do not stop the batch;
// only context cancellation aborts processing.
func (bp *BatchProcessor) Process(ctx context.Context, docs []*core.Document) (BatchResult, error) {
	var result BatchResult

	for _, doc := range docs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		rebuilt, err := bp.proc.BuildDocument(&core.QAPair{
			Question:   doc.Question,
			Answer:     doc.Answer,
			SourceFile: doc.SourceFile,
			SourceLine: doc.SourceLine,
		})
		if err != nil {
			bp.logger.Warn("reprocessing failed", "id", doc.Id, "err", err)
			result.Failed++
			continue
		}

		newID := core.DocumentID(rebuilt.NormalizedQuestion, doc.SourceFile, doc.SourceLine)
		if newID == doc.Id && !fieldsChanged(doc, rebuilt) {
			continue
		}

		// Keep the original insertion time across the rewrite.
		rebuilt.InsertedAt = doc.InsertedAt

		if err := bp.store(ctx, doc, rebuilt, newID); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			bp.logger.Warn("rewrite failed", "id", doc.Id, "err", err)
			result.Failed++
			continue
		}

		if newID != doc.Id {
			result.Rekeyed++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// store rewrites one document, removing the old record first when its
// identity changed.
func (bp *BatchProcessor) store(ctx context.Context, old, rebuilt *core.Document, newID core.ID) error {
	return RetryWithBackoff(ctx, func() error {
		if newID != old.Id {
			// A retry after a partial failure may find the old record
			// already gone.
			if err := bp.repo.DeleteDocuments(ctx, old.Id); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
		}
		_, err := bp.repo.AddDocuments(ctx, rebuilt)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
}

// fieldsChanged reports whether any derived field differs between the stored
// document and its recomputed form.
func fieldsChanged(old, rebuilt *core.Document) bool {
	return old.NormalizedQuestion != rebuilt.NormalizedQuestion ||
		!slices.Equal(old.Keywords, rebuilt.Keywords) ||
		old.QuestionType != rebuilt.QuestionType ||
		old.TypeConfidence != rebuilt.TypeConfidence ||
		old.CharCount != rebuilt.CharCount ||
		old.WordCount != rebuilt.WordCount ||
		old.HasNumbers != rebuilt.HasNumbers ||
		old.HasDates != rebuilt.HasDates
}
