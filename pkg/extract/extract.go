package extract

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const tikaTextPath = "/tika"

// Extract returns the plain-text content of the document.
func (e *extractorImpl) Extract(ctx context.Context, reader io.Reader, contentType string) (string, error) {
	if isPlainText(contentType) {
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("extract: failed to read document: %w", err)
		}
		return string(data), nil
	}

	if e.config.TikaURL == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return e.extractWithTika(ctx, reader, contentType)
}

// extractWithTika sends the document to the Tika server /tika endpoint
// and returns the extracted text.
func (e *extractorImpl) extractWithTika(ctx context.Context, reader io.Reader, contentType string) (string, error) {
	url := strings.TrimRight(e.config.TikaURL, "/") + tikaTextPath
	headers := map[string]string{"Accept": "text/plain"}

	body, status, err := e.client.PostRaw(ctx, url, contentType, reader, headers)
	if err != nil {
		return "", fmt.Errorf("extract: tika request failed: %w", err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: tika returned status %d", ErrExtractionFailed, status)
	}
	return string(body), nil
}

// isPlainText reports whether the content type can be read as-is.
func isPlainText(contentType string) bool {
	return strings.Contains(contentType, "text") || strings.Contains(contentType, "json") || strings.Contains(contentType, "xml")
}
