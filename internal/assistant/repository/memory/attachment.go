package memory

import (
	"context"

	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
)

func (r *implAttachmentRepository) Add(ctx context.Context, attachment model.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attachments[attachment.ConversationID] = append(r.attachments[attachment.ConversationID], attachment)
	return nil
}

func (r *implAttachmentRepository) GetAll(ctx context.Context, conversationID string) ([]model.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.attachments[conversationID]
	out := make([]model.Attachment, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *implAttachmentRepository) Remove(ctx context.Context, conversationID, attachmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.attachments[conversationID]
	for i, att := range stored {
		if att.ID == attachmentID {
			r.attachments[conversationID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrAttachmentNotFound
}

// Take returns and clears the conversation's attachments in one critical
// section, so two concurrent prompts can never consume the same upload.
func (r *implAttachmentRepository) Take(ctx context.Context, conversationID string) ([]model.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.attachments[conversationID]
	delete(r.attachments, conversationID)
	return stored, nil
}

func (r *implAttachmentRepository) Clear(ctx context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attachments, conversationID)
	return nil
}
