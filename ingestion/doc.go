// Package ingestion provides pipeline orchestration for importing
// question/answer pairs.
//
// The Pipeline type manages the import workflow:
//   - Validating raw pairs
//   - Processing each pair into a document (normalization, keyword
//     extraction, type classification, statistics)
//   - Adding the processed documents to storage in a single batch
//
// Processing is performed concurrently using a worker pool to maximize
// throughput. Document identity is content-derived, so re-importing the same
// pairs overwrites in place instead of duplicating.
package ingestion
