package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "assistant-srv/internal/assistant/delivery/http"
	assistantMemory "assistant-srv/internal/assistant/repository/memory"
	assistantRedis "assistant-srv/internal/assistant/repository/redis"
	assistantUsecase "assistant-srv/internal/assistant/usecase"
	"assistant-srv/internal/middleware"
	retrievalUsecase "assistant-srv/internal/retrieval/usecase"
)

// setupAssistantDomain initializes the assistant domain (repos -> usecases -> delivery)
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	attachRepo := assistantMemory.New(srv.l)
	memoryRepo := assistantRedis.New(srv.redisClient, srv.l)

	retrievalUC := retrievalUsecase.New(
		srv.voyageClient,
		srv.qdrantClient,
		srv.config.Qdrant.Collection,
		srv.l,
	)

	uc := assistantUsecase.New(
		assistantUsecase.Config{
			SystemPrompt:        srv.config.Assistant.SystemPrompt,
			MemoryWindow:        srv.config.Assistant.MemoryWindow,
			RetrievalTopK:       srv.config.Assistant.RetrievalTopK,
			SimilarityThreshold: srv.config.Assistant.SimilarityThreshold,
			BlockedTerms:        srv.config.Assistant.BlockedTerms,
			MaxUploadBytes:      srv.config.Assistant.MaxUploadBytes,
		},
		attachRepo,
		memoryRepo,
		retrievalUC,
		srv.geminiClient,
		srv.extractor,
		srv.l,
	)

	handler := assistantHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
