package httpserver

import (
	"errors"

	"assistant-srv/config"
	"assistant-srv/pkg/discord"
	"assistant-srv/pkg/extract"
	"assistant-srv/pkg/gemini"
	pkgKafka "assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/minio"
	"assistant-srv/pkg/qdrant"
	pkgRedis "assistant-srv/pkg/redis"
	"assistant-srv/pkg/voyage"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Service Configuration
	config *config.Config

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	qdrantClient  qdrant.IQdrant
	minioClient   minio.IMinIO
	kafkaProducer pkgKafka.IProducer

	// AI/ML clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini
	extractor    extract.IExtractor

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Service Configuration
	Config *config.Config

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	QdrantClient  qdrant.IQdrant
	MinIOClient   minio.IMinIO
	KafkaProducer pkgKafka.IProducer

	// AI/ML clients
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini
	Extractor    extract.IExtractor

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Service Configuration
		config: cfg.Config,

		// Infrastructure clients
		redisClient:   cfg.RedisClient,
		qdrantClient:  cfg.QdrantClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// AI/ML clients
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,
		extractor:    cfg.Extractor,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Service Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrantClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}

	// AI/ML clients
	if srv.voyageClient == nil {
		return errors.New("voyageClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}

	// Monitoring & Notification Configuration (optional)
	// if srv.discord == nil {
	// 	return errors.New("discord is required")
	// }

	return nil
}
