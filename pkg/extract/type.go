package extract

import (
	"time"

	pkgHttp "assistant-srv/pkg/http"
)

// ExtractorConfig holds text extraction configuration.
type ExtractorConfig struct {
	// TikaURL is the base URL of the Tika server, e.g. http://localhost:9998.
	TikaURL string
	Timeout time.Duration
}

// extractorImpl implements IExtractor.
type extractorImpl struct {
	config ExtractorConfig
	client pkgHttp.IClient
}
