package memory

import (
	"sync"

	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
	"assistant-srv/pkg/log"
)

type implAttachmentRepository struct {
	l  log.Logger
	mu sync.Mutex
	// attachments per conversation, in upload order
	attachments map[string][]model.Attachment
}

// New - Factory
func New(l log.Logger) repository.AttachmentRepository {
	return &implAttachmentRepository{
		l:           l,
		attachments: make(map[string][]model.Attachment),
	}
}
