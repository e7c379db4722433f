package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type documentIngestionHandler struct {
	consumer *Consumer
}

func (h *documentIngestionHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *documentIngestionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *documentIngestionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleDocumentIngestionMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "ingestion.delivery.kafka.consumer.ConsumeDocumentIngestion: Failed to process ingestion message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
