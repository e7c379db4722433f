package http

import (
	"context"
	"io"
)

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	// PostRaw performs a POST with a raw (non-JSON) body and content type.
	PostRaw(ctx context.Context, url string, contentType string, body io.Reader, headers map[string]string) ([]byte, int, error)
	// Stream performs a POST with JSON body and returns the response body as a
	// reader without draining it. The caller must close the returned reader.
	// No retries are attempted: a stream cannot be replayed.
	Stream(ctx context.Context, url string, body interface{}, headers map[string]string) (io.ReadCloser, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
