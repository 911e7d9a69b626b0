package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrNoPairs is returned when Ingest is called with nothing to import.
	ErrNoPairs = errors.New("no pairs to ingest")
)
