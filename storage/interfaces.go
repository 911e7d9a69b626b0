package storage

import (
	"context"

	"github.com/poiesic/answerit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing stored question/answer
// documents and their secondary indices.
type DocumentRepository interface {
	Repository

	// AddDocuments adds one or more documents to storage.
	// For documents with Id=0, derives the content-based ID from the
	// normalized question and source provenance, so re-adding identical
	// content overwrites in place. Sets InsertedAt if not already set and
	// always refreshes UpdatedAt. Returns the documents with IDs and
	// timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing ones).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs, including their
	// index entries. Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetByNormalizedText retrieves the document whose normalized question
	// equals text exactly. Returns ErrNotFound when no document matches.
	GetByNormalizedText(ctx context.Context, text string) (*core.Document, error)

	// GetByKeywords retrieves the deduplicated set of documents sharing at
	// least one keyword with words, via the inverted keyword index.
	GetByKeywords(ctx context.Context, words ...string) ([]*core.Document, error)

	// GetAllDocuments retrieves every stored document.
	GetAllDocuments(ctx context.Context) ([]*core.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Clear removes all documents and index entries.
	Clear(ctx context.Context) error
}
