package model

import "time"

// Context document indexing status.
const (
	DocumentStatusPending = "PENDING"
	DocumentStatusIndexed = "INDEXED"
	DocumentStatusFailed  = "FAILED"
)

// ContextDocument is a document uploaded into the shared retrieval
// context. The raw file lives in object storage; its chunks live in
// the vector store.
type ContextDocument struct {
	ID          string
	FileName    string
	ContentType string
	ObjectName  string
	Size        int64
	Status      string
	ChunkCount  int
	UploadedAt  time.Time
}

// DocumentChunk is one embedded slice of a context document.
type DocumentChunk struct {
	ID         string
	DocumentID string
	FileName   string
	Index      int
	Content    string
}
