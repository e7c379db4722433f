package repository

import (
	"context"

	"assistant-srv/internal/model"
)

//go:generate mockery --name AttachmentRepository
type AttachmentRepository interface {
	// Add stores an attachment under its conversation.
	Add(ctx context.Context, attachment model.Attachment) error
	// GetAll returns the attachments of a conversation in upload order.
	GetAll(ctx context.Context, conversationID string) ([]model.Attachment, error)
	// Remove deletes one attachment. Returns ErrAttachmentNotFound if absent.
	Remove(ctx context.Context, conversationID, attachmentID string) error
	// Take atomically returns all attachments of a conversation and clears them.
	Take(ctx context.Context, conversationID string) ([]model.Attachment, error)
	// Clear drops all attachments of a conversation.
	Clear(ctx context.Context, conversationID string) error
}

//go:generate mockery --name MemoryRepository
type MemoryRepository interface {
	// Append adds a message to the conversation history.
	Append(ctx context.Context, opt AppendMessageOptions) error
	// List returns up to opt.Limit most recent messages in chronological order.
	List(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
	// Clear drops the conversation history.
	Clear(ctx context.Context, conversationID string) error
}
