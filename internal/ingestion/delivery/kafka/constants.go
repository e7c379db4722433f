package kafka

const (
	// TopicDocumentIngestion carries ingestion requests from the API to
	// the consumer.
	TopicDocumentIngestion = "assistant.document.ingestion"

	// ConsumerGroupDocumentIngestion is the consumer group processing
	// ingestion requests.
	ConsumerGroupDocumentIngestion = "assistant-document-ingestion"
)
