package consumer

import (
	"context"

	kafkaDelivery "assistant-srv/internal/ingestion/delivery/kafka"
)

// ConsumeDocumentIngestion starts consuming document ingestion requests
func (c *Consumer) ConsumeDocumentIngestion(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupDocumentIngestion)
	if err != nil {
		return err
	}
	c.documentIngestionGroup = group

	handler := &documentIngestionHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicDocumentIngestion}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicDocumentIngestion)

	return nil
}
