// Package reindex provides functionality for reprocessing stored documents
// after the normalization rules, keyword extraction, or type classification
// change.
//
// Reindexing walks every stored document, recomputes the derived fields from
// the original question text, and rewrites documents whose fields changed.
// Because document identity is derived from the normalized question, a
// normalization change can move a document to a new ID; reindexing deletes
// the old record and writes the new one in that case.
//
// The package supports batch processing, progress tracking, and retry logic
// with exponential backoff for storage operations.
package reindex
