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
	"fmt"
	"io"
	"time"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/keywords"
	"github.com/poiesic/answerit/storage"
)

// Config holds configuration for a reindexing run.
type Config struct {
	// BatchSize is the number of documents to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed storage operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Summary reports the outcome of a reindexing run.
type Summary struct {
	Total   int // documents examined
	Updated int // rewritten in place with recomputed fields
	Rekeyed int // moved to a new content-derived ID
	Failed  int // could not be reprocessed or stored
	Elapsed time.Duration
}

// Reindexer orchestrates the reprocessing of all stored documents.
type Reindexer struct {
	repo      storage.DocumentRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *DocumentIterator
}

// NewReindexer creates a new reindexer.
// extractor: keyword extractor to recompute with (nil means standard settings)
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.DocumentRepository, extractor *keywords.Extractor, config *Config, progress io.Writer) (*Reindexer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	proc, err := ingestion.NewProcessor(extractor)
	if err != nil {
		return nil, err
	}

	return &Reindexer{
		repo:      repo,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(repo, proc, config.MaxRetries, config.RetryDelay),
		iterator:  NewDocumentIterator(repo, config.BatchSize),
	}, nil
}

// Run executes the reindexing run. Every stored document has its derived
// fields recomputed; documents whose fields changed are rewritten, and
// documents whose identity changed are moved to their new ID.
// Progress is reported to the configured writer.
func (r *Reindexer) Run(ctx context.Context) (*Summary, error) {
	total, err := r.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	summary := &Summary{Total: total}
	if total == 0 {
		fmt.Fprintf(r.progress, "No documents found in database (0 documents)\n")
		return summary, nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d documents (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	err = r.iterator.ForEach(ctx, func(docs []*core.Document) error {
		result, err := r.processor.Process(ctx, docs)
		summary.Updated += result.Updated
		summary.Rekeyed += result.Rekeyed
		summary.Failed += result.Failed
		if err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(docs)
		tracker.Update(processed)
		return nil
	})

	if err != nil {
		summary.Elapsed = tracker.Elapsed()
		return summary, err
	}

	tracker.Finish()
	summary.Elapsed = tracker.Elapsed()

	fmt.Fprintf(r.progress, "Reindex complete. Examined %d documents in %v: %d updated, %d rekeyed, %d failed\n",
		summary.Total, summary.Elapsed.Round(time.Second), summary.Updated, summary.Rekeyed, summary.Failed)

	return summary, nil
}
