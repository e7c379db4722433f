package ingestion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest stores the raw document and requests asynchronous indexing.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// ProcessDocument extracts, chunks, embeds and indexes a stored document.
	// Runs on the consumer side.
	ProcessDocument(ctx context.Context, input ProcessDocumentInput) (ProcessDocumentOutput, error)

	ListDocuments(ctx context.Context) (ListDocumentsOutput, error)
	RemoveDocument(ctx context.Context, input RemoveDocumentInput) error
}

// Producer publishes ingestion events.
type Producer interface {
	PublishIngestRequested(ctx context.Context, event IngestRequested) error
}
