package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	return &DocumentRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments adds one or more documents to storage.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// storage precision is microseconds; truncate so returned
		// documents compare equal to what a later read yields
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, doc := range docs {
			if doc.Id == 0 {
				doc.Id = core.DocumentID(doc.NormalizedQuestion, doc.SourceFile, doc.SourceLine)
			}

			key := makeDocumentKey(doc.Id)

			// Re-adding identical content overwrites in place; keep the
			// original insertion time and clean up stale index entries.
			old, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				doc.InsertedAt = old.InsertedAt
			} else if doc.InsertedAt.IsZero() {
				doc.InsertedAt = now
			}
			doc.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}

			if old != nil && old.NormalizedQuestion != doc.NormalizedQuestion {
				if err := tx.Delete(makeNormTextKey(old.NormalizedQuestion)); err != nil {
					return err
				}
			}
			if err := tx.Set(makeNormTextKey(doc.NormalizedQuestion), storage.MarshalID(doc.Id)); err != nil {
				return err
			}

			if old != nil {
				if err := r.deleteKeywordIndex(tx, old); err != nil {
					return err
				}
			}
			if err := r.updateKeywordIndex(tx, doc); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.Document, error) {
	var result *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readDocument(tx, makeDocumentKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetDocuments retrieves multiple documents by their IDs.
// Missing documents are skipped without error.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error) {
	results := make([]*core.Document, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, err := r.readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				results = append(results, doc)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteDocuments removes documents by their IDs, including index entries.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)
			doc, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if doc == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeNormTextKey(doc.NormalizedQuestion)); err != nil {
				return err
			}
			if err := r.deleteKeywordIndex(tx, doc); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetByNormalizedText retrieves the document whose normalized question
// equals text exactly.
func (r *DocumentRepository) GetByNormalizedText(ctx context.Context, text string) (*core.Document, error) {
	var result *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeNormTextKey(text))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readDocument(tx, makeDocumentKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			// dangling index entry
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetByKeywords retrieves the deduplicated set of documents sharing at
// least one keyword with words.
func (r *DocumentRepository) GetByKeywords(ctx context.Context, words ...string) ([]*core.Document, error) {
	var results []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		seen := make(map[core.ID]struct{})
		for _, word := range words {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = makePartialKeywordKey(word)
			iter := tx.NewIterator(opts)

			var ids []core.ID
			for iter.Rewind(); iter.Valid(); iter.Next() {
				var id core.ID
				if err := iter.Item().Value(func(val []byte) error {
					var err error
					id, err = storage.UnmarshalID(val)
					return err
				}); err != nil {
					iter.Close()
					return err
				}
				if _, dup := seen[id]; !dup {
					seen[id] = struct{}{}
					ids = append(ids, id)
				}
			}
			iter.Close()

			for _, id := range ids {
				doc, err := r.readDocument(tx, makeDocumentKey(id))
				if err != nil {
					return err
				}
				if doc != nil {
					results = append(results, doc)
				}
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetAllDocuments retrieves every stored document.
func (r *DocumentRepository) GetAllDocuments(ctx context.Context) ([]*core.Document, error) {
	var results []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.Document
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			}); err != nil {
				return err
			}
			if doc != nil {
				results = append(results, doc)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored documents.
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Clear removes all documents and index entries.
func (r *DocumentRepository) Clear(ctx context.Context) error {
	return r.backend.DropPrefixes(
		[]byte(documentPrefix+":"),
		[]byte(documentNormPrefix+":"),
		[]byte(documentKeywordPrefix+":"),
	)
}

// readDocument reads a document by key, returning nil when absent.
func (r *DocumentRepository) readDocument(tx *badger.Txn, key []byte) (*core.Document, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalDocument(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *DocumentRepository) updateKeywordIndex(tx *badger.Txn, doc *core.Document) error {
	idBytes := storage.MarshalID(doc.Id)
	for _, kw := range doc.Keywords {
		if err := tx.Set(makeKeywordKey(kw.Word, doc.Id), idBytes); err != nil {
			return err
		}
	}
	return nil
}

func (r *DocumentRepository) deleteKeywordIndex(tx *badger.Txn, doc *core.Document) error {
	for _, kw := range doc.Keywords {
		if err := tx.Delete(makeKeywordKey(kw.Word, doc.Id)); err != nil {
			return err
		}
	}
	return nil
}
