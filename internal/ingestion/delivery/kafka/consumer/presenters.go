package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"assistant-srv/internal/ingestion"
	kafkaDelivery "assistant-srv/internal/ingestion/delivery/kafka"
)

// handleDocumentIngestionMessage decodes and processes one ingestion request.
func (c *Consumer) handleDocumentIngestionMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var m kafkaDelivery.DocumentIngestionMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return fmt.Errorf("failed to unmarshal ingestion message: %w", err)
	}
	if m.DocumentID == "" || m.ObjectName == "" {
		return fmt.Errorf("ingestion message missing document_id or object_name")
	}

	out, err := c.uc.ProcessDocument(ctx, ingestion.ProcessDocumentInput{
		DocumentID:  m.DocumentID,
		ObjectName:  m.ObjectName,
		FileName:    m.FileName,
		ContentType: m.ContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to process document %s: %w", m.DocumentID, err)
	}

	c.l.Infof(ctx, "Processed document %s: %d chunks indexed", out.DocumentID, out.ChunksIndexed)
	return nil
}
