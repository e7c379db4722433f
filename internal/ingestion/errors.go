package ingestion

import "errors"

// Domain errors
var (
	ErrInvalidDocument   = errors.New("ingestion: invalid document")
	ErrUnsupportedType   = errors.New("ingestion: unsupported content type")
	ErrDocumentNotFound  = errors.New("ingestion: document not found")
	ErrUploadFailed      = errors.New("ingestion: upload failed")
	ErrDownloadFailed    = errors.New("ingestion: download failed")
	ErrExtractionFailed  = errors.New("ingestion: text extraction failed")
	ErrEmbeddingFailed   = errors.New("ingestion: embedding failed")
	ErrIndexingFailed    = errors.New("ingestion: vector indexing failed")
	ErrPublishFailed     = errors.New("ingestion: failed to publish ingestion event")
	ErrEmptyDocumentText = errors.New("ingestion: document contains no extractable text")
)
