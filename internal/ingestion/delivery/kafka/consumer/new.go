package consumer

import (
	"fmt"

	"assistant-srv/config"
	"assistant-srv/internal/ingestion"
	pkgKafka "assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
)

// Config holds the configuration for the ingestion consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     ingestion.UseCase
}

// Consumer manages Kafka consumer groups for the ingestion domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          ingestion.UseCase

	documentIngestionGroup pkgKafka.IConsumer
}

// New creates a new ingestion consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.documentIngestionGroup != nil {
		if err := c.documentIngestionGroup.Close(); err != nil {
			return fmt.Errorf("failed to close document ingestion group: %w", err)
		}
	}
	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	return pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
}
