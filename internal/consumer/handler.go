package consumer

import (
	"context"
	"fmt"

	ingestionConsumer "assistant-srv/internal/ingestion/delivery/kafka/consumer"
	ingestionProducer "assistant-srv/internal/ingestion/delivery/kafka/producer"
	ingestionRedis "assistant-srv/internal/ingestion/repository/redis"
	ingestionUsecase "assistant-srv/internal/ingestion/usecase"
	"assistant-srv/pkg/voyage"

	pb "github.com/qdrant/go-client/qdrant"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	ingestionConsumer *ingestionConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	if err := srv.minioClient.EnsureBucket(ctx, srv.config.MinIO.Bucket); err != nil {
		return nil, err
	}
	if err := srv.qdrantClient.CreateCollection(ctx, srv.config.Qdrant.Collection, voyage.VectorSize, pb.Distance_Cosine); err != nil {
		// Create fails when the collection already exists, which is fine on restart.
		srv.l.Warnf(ctx, "Qdrant collection %s not created: %v", srv.config.Qdrant.Collection, err)
	}

	docRepo := ingestionRedis.New(srv.redisClient, srv.l)
	producer := ingestionProducer.New(srv.l, srv.kafkaProducer)

	ingestionUC := ingestionUsecase.New(
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

	ingestionCons, err := ingestionConsumer.New(ingestionConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     ingestionUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion consumer: %w", err)
	}

	srv.l.Infof(ctx, "Ingestion domain initialized")

	return &domainConsumers{
		ingestionConsumer: ingestionCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.ingestionConsumer.ConsumeDocumentIngestion(ctx); err != nil {
		return fmt.Errorf("failed to start ingestion consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.ingestionConsumer != nil {
		if err := consumers.ingestionConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing ingestion consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
