package usecase

import (
	"assistant-srv/internal/ingestion"
	"assistant-srv/internal/ingestion/repository"
	"assistant-srv/pkg/extract"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/minio"
	"assistant-srv/pkg/qdrant"
	"assistant-srv/pkg/voyage"
)

// Config tunes document processing.
type Config struct {
	Bucket       string
	Collection   string
	ChunkSize    int
	ChunkOverlap int
}

type implUseCase struct {
	cfg       Config
	docRepo   repository.DocumentRepository
	minio     minio.IMinIO
	extractor extract.IExtractor
	voyage    voyage.IVoyage
	qdrant    qdrant.IQdrant
	producer  ingestion.Producer
	l         log.Logger
}

// New - Factory function
func New(
	cfg Config,
	docRepo repository.DocumentRepository,
	minio minio.IMinIO,
	extractor extract.IExtractor,
	voyage voyage.IVoyage,
	qdrant qdrant.IQdrant,
	producer ingestion.Producer,
	l log.Logger,
) ingestion.UseCase {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = ingestion.DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		// The default overlap may itself exceed a small chunk size, so the
		// fallback is clamped to keep the split step positive.
		cfg.ChunkOverlap = ingestion.DefaultChunkOverlap
		if cfg.ChunkOverlap >= cfg.ChunkSize {
			cfg.ChunkOverlap = cfg.ChunkSize / 4
		}
	}
	return &implUseCase{
		cfg:       cfg,
		docRepo:   docRepo,
		minio:     minio,
		extractor: extractor,
		voyage:    voyage,
		qdrant:    qdrant,
		producer:  producer,
		l:         l,
	}
}
