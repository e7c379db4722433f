package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Qdrant - Vector database for retrieval context
	Qdrant QdrantConfig

	// Voyage - Embedding
	Voyage VoyageConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Redis - Conversation memory
	Redis RedisConfig

	// MinIO - Context document storage
	MinIO MinIOConfig

	// Kafka - Ingestion events
	Kafka KafkaConfig

	// Extractor - Document text extraction
	Extractor ExtractorConfig

	// Assistant - Conversation behavior
	Assistant AssistantConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Timeout    int // in seconds
	Collection string
}

// VoyageConfig is the configuration for Voyage AI (embedding). Same shape as pkg/voyage.VoyageConfig.
type VoyageConfig struct {
	APIKey string
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ExtractorConfig is the configuration for the document text extractor.
type ExtractorConfig struct {
	TikaURL string
	Timeout int // in seconds
}

// AssistantConfig tunes conversation behavior.
type AssistantConfig struct {
	SystemPrompt        string
	MemoryWindow        int
	RetrievalTopK       int
	SimilarityThreshold float64
	BlockedTerms        []string
	MaxUploadBytes      int64
	ChunkSize           int
	ChunkOverlap        int
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("assistant-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/assistant/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Qdrant
	cfg.Qdrant.Host = viper.GetString("qdrant.host")
	cfg.Qdrant.Port = viper.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = viper.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = viper.GetInt("qdrant.timeout")
	cfg.Qdrant.Collection = viper.GetString("qdrant.collection")

	// Voyage - Embedding
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// Redis - Conversation memory
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - Context document storage
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka - Ingestion events
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ConsumerGroup = viper.GetString("kafka.consumer_group")

	// Extractor
	cfg.Extractor.TikaURL = viper.GetString("extractor.tika_url")
	cfg.Extractor.Timeout = viper.GetInt("extractor.timeout")

	// Assistant
	cfg.Assistant.SystemPrompt = viper.GetString("assistant.system_prompt")
	cfg.Assistant.MemoryWindow = viper.GetInt("assistant.memory_window")
	cfg.Assistant.RetrievalTopK = viper.GetInt("assistant.retrieval_top_k")
	cfg.Assistant.SimilarityThreshold = viper.GetFloat64("assistant.similarity_threshold")
	cfg.Assistant.BlockedTerms = viper.GetStringSlice("assistant.blocked_terms")
	cfg.Assistant.MaxUploadBytes = viper.GetInt64("assistant.max_upload_bytes")
	cfg.Assistant.ChunkSize = viper.GetInt("assistant.chunk_size")
	cfg.Assistant.ChunkOverlap = viper.GetInt("assistant.chunk_overlap")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Qdrant
	viper.SetDefault("qdrant.host", "localhost")
	viper.SetDefault("qdrant.port", 6334)
	viper.SetDefault("qdrant.use_tls", false)
	viper.SetDefault("qdrant.timeout", 30)
	viper.SetDefault("qdrant.collection", "assistant-context")

	// 2. AI (Voyage + Gemini)
	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	// 3. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 4. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "assistant-context")

	// 5. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "assistant.document.ingestion")
	viper.SetDefault("kafka.consumer_group", "assistant-document-ingestion")

	// 6. Extractor
	viper.SetDefault("extractor.tika_url", "http://localhost:9998")
	viper.SetDefault("extractor.timeout", 30)

	// 7. Assistant
	viper.SetDefault("assistant.system_prompt", DefaultSystemPrompt)
	viper.SetDefault("assistant.memory_window", 20)
	viper.SetDefault("assistant.retrieval_top_k", 5)
	viper.SetDefault("assistant.similarity_threshold", 0.5)
	viper.SetDefault("assistant.blocked_terms", []string{})
	viper.SetDefault("assistant.max_upload_bytes", 10*1024*1024)
	viper.SetDefault("assistant.chunk_size", 800)
	viper.SetDefault("assistant.chunk_overlap", 200)
}

func validate(cfg *Config) error {
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Qdrant Configuration
	if cfg.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if cfg.Qdrant.Port == 0 {
		return fmt.Errorf("qdrant.port is required")
	}
	if cfg.Qdrant.Collection == "" {
		return fmt.Errorf("qdrant.collection is required")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	// Validate Assistant Configuration
	if cfg.Assistant.MemoryWindow <= 0 {
		return fmt.Errorf("assistant.memory_window must be greater than 0")
	}
	if cfg.Assistant.SimilarityThreshold < 0 || cfg.Assistant.SimilarityThreshold > 1 {
		return fmt.Errorf("assistant.similarity_threshold must be between 0 and 1")
	}

	return nil
}
