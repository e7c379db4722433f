package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assistant-srv/internal/ingestion"
	kafkaDelivery "assistant-srv/internal/ingestion/delivery/kafka"
)

// PublishIngestRequested publishes an ingestion request event
func (p *implProducer) PublishIngestRequested(ctx context.Context, event ingestion.IngestRequested) error {
	msg := kafkaDelivery.DocumentIngestionMessage{
		DocumentID:  event.DocumentID,
		ObjectName:  event.ObjectName,
		FileName:    event.FileName,
		ContentType: event.ContentType,
		RequestedAt: time.Now(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ingestion request: %w", err)
	}

	key := []byte(event.DocumentID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish ingestion request: %w", err)
	}

	p.l.Infof(ctx, "Published ingestion request for document %s (%s)", event.DocumentID, event.FileName)
	return nil
}
