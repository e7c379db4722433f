package ingestion

import "assistant-srv/internal/model"

const (
	// MaxConcurrency bounds parallel chunk embedding during processing.
	MaxConcurrency = 4
	// EmbedBatchSize is the number of chunks sent per embedding request.
	EmbedBatchSize = 32

	DefaultChunkSize    = 800
	DefaultChunkOverlap = 200
)

type IngestInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

type IngestOutput struct {
	Document model.ContextDocument
}

// ProcessDocumentInput identifies a stored document to extract, chunk,
// embed and index.
type ProcessDocumentInput struct {
	DocumentID  string
	ObjectName  string
	FileName    string
	ContentType string
}

type ProcessDocumentOutput struct {
	DocumentID    string
	ChunksIndexed int
}

type ListDocumentsOutput struct {
	Documents []model.ContextDocument
}

type RemoveDocumentInput struct {
	DocumentID string
}

// IngestRequested is the event published when a document lands in
// object storage and awaits indexing.
type IngestRequested struct {
	DocumentID  string
	ObjectName  string
	FileName    string
	ContentType string
}
