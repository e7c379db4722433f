package usecase

import (
	"context"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
)

func (uc *implUseCase) GetHistory(ctx context.Context, input assistant.GetHistoryInput) (assistant.GetHistoryOutput, error) {
	if input.ConversationID == "" {
		return assistant.GetHistoryOutput{}, assistant.ErrConversationRequired
	}

	messages, err := uc.memoryRepo.List(ctx, repository.ListMessagesOptions{
		ConversationID: input.ConversationID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.GetHistory: List failed: %v", err)
		return assistant.GetHistoryOutput{}, err
	}

	// Only user and assistant turns are part of the visible history.
	visible := messages[:0]
	for _, msg := range messages {
		if msg.Role == model.RoleUser || msg.Role == model.RoleAssistant {
			visible = append(visible, msg)
		}
	}
	return assistant.GetHistoryOutput{Messages: visible}, nil
}

// CloseChat drops the conversation's history and pending attachments.
func (uc *implUseCase) CloseChat(ctx context.Context, input assistant.CloseChatInput) error {
	if input.ConversationID == "" {
		return assistant.ErrConversationRequired
	}

	if err := uc.memoryRepo.Clear(ctx, input.ConversationID); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.CloseChat: Clear memory failed: %v", err)
		return err
	}
	if err := uc.attachRepo.Clear(ctx, input.ConversationID); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.CloseChat: Clear attachments failed: %v", err)
		return err
	}
	return nil
}
