package extract

import (
	"context"
	"io"

	pkgHttp "assistant-srv/pkg/http"
)

// IExtractor defines the interface for extracting plain text from documents.
type IExtractor interface {
	// Extract returns the plain-text content of a document. The content type
	// decides the extraction path: text documents pass through, binary
	// formats go to the Tika server.
	Extract(ctx context.Context, reader io.Reader, contentType string) (string, error)
}

// NewExtractor creates a new text extractor. Returns the interface.
func NewExtractor(cfg ExtractorConfig) IExtractor {
	return &extractorImpl{
		config: cfg,
		client: pkgHttp.NewClient(pkgHttp.ClientConfig{Timeout: cfg.Timeout}),
	}
}
