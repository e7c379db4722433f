package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Stream runs one completion turn. The returned channel delivers
	// token deltas and exactly one terminal event, then closes.
	// Cancelling ctx stops generation.
	Stream(ctx context.Context, input StreamInput) (<-chan StreamEvent, error)

	UploadAttachment(ctx context.Context, input UploadAttachmentInput) (UploadAttachmentOutput, error)
	RemoveAttachment(ctx context.Context, input RemoveAttachmentInput) error
	ListAttachments(ctx context.Context, input ListAttachmentsInput) (ListAttachmentsOutput, error)

	GetHistory(ctx context.Context, input GetHistoryInput) (GetHistoryOutput, error)
	CloseChat(ctx context.Context, input CloseChatInput) error
}
