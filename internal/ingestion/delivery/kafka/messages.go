package kafka

import "time"

// DocumentIngestionMessage - Kafka message for assistant.document.ingestion
type DocumentIngestionMessage struct {
	DocumentID  string    `json:"document_id"`
	ObjectName  string    `json:"object_name"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	RequestedAt time.Time `json:"requested_at"`
}
