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


package answerit

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/ai/openai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/match"
	"github.com/poiesic/answerit/reindex"
	"github.com/poiesic/answerit/storage"
	"github.com/poiesic/answerit/storage/badger"
)

// Database bundles storage, the matching engine, and the optional remote
// answer generator behind one handle.
type Database struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	provider ai.AIProvider
	engine   *match.Engine
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	noAI     bool
	inMemory bool
}

// WithAIConfig sets the remote generator configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI client.
// Intended for tests.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithoutAI disables the remote answer generator entirely. Queries that no
// local tier can answer report no match.
func WithoutAI() DatabaseOption {
	return func(o *databaseOptions) {
		o.noAI = true
	}
}

// WithInMemoryStorage runs storage without persistence, for testing.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens (or creates) a database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create document repository
	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil && !options.noAI {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	engineOpts := []match.EngineOption{}
	if provider != nil {
		engineOpts = append(engineOpts, match.WithGenerator(provider.AnswerGenerator()))
	}

	engine, err := match.NewEngine(docRepo, engineOpts...)
	if err != nil {
		if provider != nil {
			provider.Close()
		}
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:  backend,
		docRepo:  docRepo,
		provider: provider,
		engine:   engine,
		logger:   slog.Default(),
	}, nil
}

// Close releases all resources.
func (db *Database) Close() error {
	// Close AI provider first
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := db.docRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Ask runs a query through the matching cascade and returns its result.
func (db *Database) Ask(ctx context.Context, query string, opts match.Options) (*match.Result, error) {
	return db.engine.FindAnswer(ctx, query, opts)
}

// ImportPairs ingests question/answer pairs and invalidates the query cache.
// Returns the number of documents written.
func (db *Database) ImportPairs(ctx context.Context, pairs ...core.QAPair) (int, error) {
	pipeline, err := ingestion.NewPipeline(db.docRepo)
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	count, err := pipeline.Ingest(ctx, pairs...)
	if err != nil {
		return count, err
	}

	db.engine.InvalidateCache()
	return count, nil
}

// ClearDocuments removes every stored document and invalidates the query cache.
func (db *Database) ClearDocuments(ctx context.Context) error {
	if err := db.docRepo.Clear(ctx); err != nil {
		return err
	}
	db.engine.InvalidateCache()
	return nil
}

// Stats describes the current state of the database.
type Stats struct {
	Documents        int
	CacheSize        int
	CacheUtilization float64
}

// Stats reports document and cache counts.
func (db *Database) Stats(ctx context.Context) (*Stats, error) {
	count, err := db.docRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	size, utilization := db.engine.CacheStats()
	return &Stats{
		Documents:        count,
		CacheSize:        size,
		CacheUtilization: utilization,
	}, nil
}

// DocumentRepository exposes the underlying repository.
func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.docRepo
}

// Engine exposes the matching engine.
func (db *Database) Engine() *match.Engine {
	return db.engine
}

// NewIngestionPipeline creates an ingestion pipeline bound to this database.
// Callers running repeated imports should reuse one pipeline and invalidate
// the engine cache when done.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.docRepo, opts...)
}

// Reindex reprocesses every stored document and invalidates the query cache.
// progress: where to write progress output (typically os.Stderr)
func (db *Database) Reindex(ctx context.Context, cfg *reindex.Config, progress io.Writer) (*reindex.Summary, error) {
	reindexer, err := reindex.NewReindexer(db.docRepo, nil, cfg, progress)
	if err != nil {
		return nil, err
	}

	summary, err := reindexer.Run(ctx)
	db.engine.InvalidateCache()
	return summary, err
}
