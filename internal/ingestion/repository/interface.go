package repository

import (
	"context"

	"assistant-srv/internal/model"
)

//go:generate mockery --name DocumentRepository
type DocumentRepository interface {
	// Save stores or replaces a document record.
	Save(ctx context.Context, doc model.ContextDocument) error
	// Get returns one document. Returns ErrDocumentNotFound if absent.
	Get(ctx context.Context, documentID string) (model.ContextDocument, error)
	// List returns all registered documents.
	List(ctx context.Context) ([]model.ContextDocument, error)
	// Delete removes a document record.
	Delete(ctx context.Context, documentID string) error
}
