package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ingestionHTTP "assistant-srv/internal/ingestion/delivery/http"
	ingestionProducer "assistant-srv/internal/ingestion/delivery/kafka/producer"
	ingestionRedis "assistant-srv/internal/ingestion/repository/redis"
	ingestionUsecase "assistant-srv/internal/ingestion/usecase"
	"assistant-srv/internal/middleware"
	"assistant-srv/pkg/voyage"

	pb "github.com/qdrant/go-client/qdrant"
)

// setupIngestionDomain initializes the context document ingestion domain
func (srv *HTTPServer) setupIngestionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if err := srv.minioClient.EnsureBucket(ctx, srv.config.MinIO.Bucket); err != nil {
		return err
	}
	if err := srv.qdrantClient.CreateCollection(ctx, srv.config.Qdrant.Collection, voyage.VectorSize, pb.Distance_Cosine); err != nil {
		// Create fails when the collection already exists, which is fine on restart.
		srv.l.Warnf(ctx, "Qdrant collection %s not created: %v", srv.config.Qdrant.Collection, err)
	}

	docRepo := ingestionRedis.New(srv.redisClient, srv.l)
	producer := ingestionProducer.New(srv.l, srv.kafkaProducer)

	uc := ingestionUsecase.New(
		ingestionUsecase.Config{
			Bucket:       srv.config.MinIO.Bucket,
			Collection:   srv.config.Qdrant.Collection,
			ChunkSize:    srv.config.Assistant.ChunkSize,
			ChunkOverlap: srv.config.Assistant.ChunkOverlap,
		},
		docRepo,
		srv.minioClient,
		srv.extractor,
		srv.voyageClient,
		srv.qdrantClient,
		producer,
		srv.l,
	)

	handler := ingestionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Ingestion domain registered")
	return nil
}
