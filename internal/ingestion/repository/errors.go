package repository

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFailedToSave     = errors.New("failed to save document")
	ErrFailedToList     = errors.New("failed to list documents")
)
