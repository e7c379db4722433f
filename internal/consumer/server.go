package consumer

import (
	"context"

	"assistant-srv/config"
	"assistant-srv/pkg/discord"
	"assistant-srv/pkg/extract"
	pkgKafka "assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/minio"
	"assistant-srv/pkg/qdrant"
	pkgRedis "assistant-srv/pkg/redis"
	"assistant-srv/pkg/voyage"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	qdrantClient  qdrant.IQdrant
	minioClient   minio.IMinIO
	kafkaProducer pkgKafka.IProducer

	// AI/ML clients
	voyageClient voyage.IVoyage
	extractor    extract.IExtractor

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	QdrantClient  qdrant.IQdrant
	MinIOClient   minio.IMinIO
	KafkaProducer pkgKafka.IProducer

	// AI/ML clients
	VoyageClient voyage.IVoyage
	Extractor    extract.IExtractor

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
