package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/keywords"
	"github.com/poiesic/answerit/storage"
)

// Pipeline orchestrates the import of question/answer pairs.
// It processes pairs concurrently and stores the results in a single batch.
type Pipeline struct {
	repository storage.DocumentRepository
	pool       *ants.Pool
	proc       *Processor
	extractor  *keywords.Extractor
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithExtractor sets a custom keyword extractor. Default is a fresh
// extractor with standard settings. Documents ingested with a non-standard
// extractor should be reindexed if the extractor changes later.
func WithExtractor(extractor *keywords.Extractor) Option {
	return func(p *Pipeline) error {
		p.extractor = extractor
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		pool:       pool,
		logger:     slog.Default().With("component", "ingestion"),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	proc, err := NewProcessor(p.extractor)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.proc = proc

	return p, nil
}

// Ingest validates, processes, and stores the given pairs, returning the
// number of documents written. Validation failures abort the whole batch
// before anything is stored. Pairs are processed concurrently but stored in
// a single batch, so a storage error also means nothing was written.
func (p *Pipeline) Ingest(ctx context.Context, pairs ...core.QAPair) (int, error) {
	if len(pairs) == 0 {
		return 0, ErrNoPairs
	}

	for i := range pairs {
		if err := core.ValidateQAPair(&pairs[i]); err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
	}

	p.logger.Info("ingesting pairs", "pairs", len(pairs))

	docs := make([]*core.Document, len(pairs))
	procErrs := make([]error, len(pairs))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		idx := i
		if err := p.pool.Submit(func() {
			defer wg.Done()
			docs[idx], procErrs[idx] = p.proc.BuildDocument(&pairs[idx])
		}); err != nil {
			wg.Done()
			procErrs[idx] = err
		}
	}
	wg.Wait()

	for i, err := range procErrs {
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
	}

	added, err := p.repository.AddDocuments(ctx, docs...)
	if err != nil {
		return 0, err
	}

	p.logger.Debug("ingestion complete", "documents", len(added))
	return len(added), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
