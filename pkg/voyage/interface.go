package voyage

import (
	"context"
	"fmt"
	"time"

	pkghttp "assistant-srv/pkg/http"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VoyageConfig holds the configuration for the Voyage client.
type VoyageConfig struct {
	APIKey string
}

// NewVoyage creates a new Voyage client. APIKey must be set.
func NewVoyage(cfg VoyageConfig) (IVoyage, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	return &voyageImpl{
		apiKey: cfg.APIKey,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
