package usecase

import (
	"sync"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/retrieval"
	"assistant-srv/pkg/extract"
	"assistant-srv/pkg/gemini"
	"assistant-srv/pkg/log"
)

// Config tunes conversation behavior.
type Config struct {
	SystemPrompt        string
	MemoryWindow        int
	RetrievalTopK       int
	SimilarityThreshold float64
	BlockedTerms        []string
	MaxUploadBytes      int64
}

type implUseCase struct {
	cfg         Config
	attachRepo  repository.AttachmentRepository
	memoryRepo  repository.MemoryRepository
	retrievalUC retrieval.UseCase
	gemini      gemini.IGemini
	extractor   extract.IExtractor
	l           log.Logger

	// one in-flight stream per conversation
	streamMu      sync.Mutex
	activeStreams map[string]struct{}
}

// New - Factory function
func New(
	cfg Config,
	attachRepo repository.AttachmentRepository,
	memoryRepo repository.MemoryRepository,
	retrievalUC retrieval.UseCase,
	gemini gemini.IGemini,
	extractor extract.IExtractor,
	l log.Logger,
) assistant.UseCase {
	if cfg.MemoryWindow <= 0 {
		cfg.MemoryWindow = assistant.MaxMemoryMessages
	}
	return &implUseCase{
		cfg:           cfg,
		attachRepo:    attachRepo,
		memoryRepo:    memoryRepo,
		retrievalUC:   retrievalUC,
		gemini:        gemini,
		extractor:     extractor,
		l:             l,
		activeStreams: make(map[string]struct{}),
	}
}
