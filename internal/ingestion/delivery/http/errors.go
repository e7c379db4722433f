package http

import (
	"errors"

	"assistant-srv/internal/ingestion"
	pkgErrors "assistant-srv/pkg/errors"
)

var (
	errInvalidDocument  = pkgErrors.NewHTTPError(400, "Invalid document")
	errUnsupportedType  = pkgErrors.NewHTTPError(400, "Unsupported content type")
	errDocumentNotFound = pkgErrors.NewHTTPError(404, "Document not found")
	errUploadFailed     = pkgErrors.NewHTTPError(500, "Document upload failed")
	errPublishFailed    = pkgErrors.NewHTTPError(500, "Failed to request indexing")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ingestion.ErrInvalidDocument):
		return errInvalidDocument
	case errors.Is(err, ingestion.ErrUnsupportedType):
		return errUnsupportedType
	case errors.Is(err, ingestion.ErrDocumentNotFound):
		return errDocumentNotFound
	case errors.Is(err, ingestion.ErrUploadFailed):
		return errUploadFailed
	case errors.Is(err, ingestion.ErrPublishFailed):
		return errPublishFailed
	default:
		return err
	}
}
