package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
)

// UploadAttachment validates, classifies and stores an uploaded file
// under its conversation. The file stays in memory until the next
// completion turn consumes it.
func (uc *implUseCase) UploadAttachment(ctx context.Context, input assistant.UploadAttachmentInput) (assistant.UploadAttachmentOutput, error) {
	if input.ConversationID == "" {
		return assistant.UploadAttachmentOutput{}, assistant.ErrConversationRequired
	}
	if input.FileName == "" || len(input.Data) == 0 {
		return assistant.UploadAttachmentOutput{}, assistant.ErrInvalidUpload
	}
	if uc.cfg.MaxUploadBytes > 0 && int64(len(input.Data)) > uc.cfg.MaxUploadBytes {
		return assistant.UploadAttachmentOutput{}, assistant.ErrAttachmentTooLarge
	}

	kind, err := classifyAttachment(input.ContentType)
	if err != nil {
		return assistant.UploadAttachmentOutput{}, err
	}

	attachment := model.Attachment{
		ID:             uuid.NewString(),
		ConversationID: input.ConversationID,
		FileName:       input.FileName,
		ContentType:    input.ContentType,
		Data:           input.Data,
		Kind:           kind,
		UploadedAt:     time.Now(),
	}

	if err := uc.attachRepo.Add(ctx, attachment); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.UploadAttachment: Add failed: %v", err)
		return assistant.UploadAttachmentOutput{}, fmt.Errorf("store attachment: %w", err)
	}

	return assistant.UploadAttachmentOutput{Attachment: attachment}, nil
}

func (uc *implUseCase) RemoveAttachment(ctx context.Context, input assistant.RemoveAttachmentInput) error {
	if input.ConversationID == "" {
		return assistant.ErrConversationRequired
	}

	err := uc.attachRepo.Remove(ctx, input.ConversationID, input.AttachmentID)
	if err != nil {
		// Removing an attachment that is already gone is a no-op. The
		// upload may just have been consumed by a concurrent turn.
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return nil
		}
		uc.l.Errorf(ctx, "assistant.usecase.RemoveAttachment: Remove failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) ListAttachments(ctx context.Context, input assistant.ListAttachmentsInput) (assistant.ListAttachmentsOutput, error) {
	if input.ConversationID == "" {
		return assistant.ListAttachmentsOutput{}, assistant.ErrConversationRequired
	}

	attachments, err := uc.attachRepo.GetAll(ctx, input.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ListAttachments: GetAll failed: %v", err)
		return assistant.ListAttachmentsOutput{}, err
	}
	return assistant.ListAttachmentsOutput{Attachments: attachments}, nil
}

// classifyAttachment decides how a file enters the prompt based on its
// content type. Text-like documents and PDFs are inlined as text,
// images go to the model as media.
func classifyAttachment(contentType string) (model.AttachmentKind, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "image"):
		return model.AttachmentKindImage, nil
	case strings.Contains(ct, "text"), strings.Contains(ct, "pdf"):
		return model.AttachmentKindDocument, nil
	default:
		return "", assistant.ErrUnsupportedAttachment
	}
}
