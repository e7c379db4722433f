package producer

import (
	"assistant-srv/internal/ingestion"
	pkgKafka "assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
)

// Producer interface for ingestion domain
type Producer interface {
	ingestion.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new ingestion producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
