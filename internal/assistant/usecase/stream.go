package usecase

import (
	"context"
	"strings"
	"time"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
	"assistant-srv/pkg/gemini"
)

const blockedResponse = "I'm sorry, but I can't help with that request."

// Stream runs one completion turn.
// Flow: validate -> acquire conversation gate -> guard -> consume attachments
// -> load memory -> assemble prompt -> stream LLM -> record turn
func (uc *implUseCase) Stream(ctx context.Context, input assistant.StreamInput) (<-chan assistant.StreamEvent, error) {
	if err := uc.validateStreamInput(input); err != nil {
		return nil, err
	}

	if !uc.acquireStream(input.ConversationID) {
		return nil, assistant.ErrStreamInProgress
	}

	// Guard: refuse blocked content without touching the model. The turn
	// still consumes pending attachments so a refused upload does not ride
	// into the next message.
	if uc.isBlocked(input.Message) {
		if _, err := uc.attachRepo.Take(ctx, input.ConversationID); err != nil {
			uc.l.Warnf(ctx, "assistant.usecase.Stream: Take attachments failed: %v", err)
		}
		out := make(chan assistant.StreamEvent, 2)
		uc.recordTurn(ctx, input.ConversationID, input.Message, blockedResponse)
		uc.releaseStream(input.ConversationID)
		out <- assistant.StreamEvent{Delta: blockedResponse}
		out <- assistant.StreamEvent{Done: true}
		close(out)
		return out, nil
	}

	// Attachments are consumed by this turn exactly once.
	attachments, err := uc.attachRepo.Take(ctx, input.ConversationID)
	if err != nil {
		uc.releaseStream(input.ConversationID)
		uc.l.Errorf(ctx, "assistant.usecase.Stream: Take attachments failed: %v", err)
		return nil, err
	}

	history, err := uc.memoryRepo.List(ctx, repository.ListMessagesOptions{
		ConversationID: input.ConversationID,
		Limit:          uc.cfg.MemoryWindow,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Stream: List history failed: %v", err)
	}

	req, err := uc.assemblePrompt(ctx, input, history, attachments)
	if err != nil {
		uc.releaseStream(input.ConversationID)
		return nil, err
	}

	chunks, err := uc.gemini.GenerateStream(ctx, req)
	if err != nil {
		uc.releaseStream(input.ConversationID)
		uc.l.Errorf(ctx, "assistant.usecase.Stream: GenerateStream failed: %v", err)
		return nil, assistant.ErrLLMFailed
	}

	out := make(chan assistant.StreamEvent)
	go uc.forwardStream(ctx, input, chunks, out)
	return out, nil
}

// forwardStream relays model chunks as stream events, accumulates the
// full answer and records the turn once generation finishes cleanly.
func (uc *implUseCase) forwardStream(ctx context.Context, input assistant.StreamInput, chunks <-chan gemini.StreamChunk, out chan<- assistant.StreamEvent) {
	defer close(out)
	defer uc.releaseStream(input.ConversationID)

	var answer strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			uc.l.Errorf(ctx, "assistant.usecase.forwardStream: stream failed: %v", chunk.Err)
			uc.emit(ctx, out, assistant.StreamEvent{Err: assistant.ErrLLMFailed, Done: true})
			return
		}
		if chunk.Done {
			uc.recordTurn(ctx, input.ConversationID, input.Message, answer.String())
			uc.emit(ctx, out, assistant.StreamEvent{Done: true})
			return
		}
		answer.WriteString(chunk.Delta)
		if !uc.emit(ctx, out, assistant.StreamEvent{Delta: chunk.Delta}) {
			// Consumer gone. A partial turn is not recorded.
			return
		}
	}
}

// emit delivers an event unless the consumer's context is gone.
func (uc *implUseCase) emit(ctx context.Context, out chan<- assistant.StreamEvent, ev assistant.StreamEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// recordTurn appends the user and assistant messages to memory.
func (uc *implUseCase) recordTurn(ctx context.Context, conversationID, userMessage, answer string) {
	now := time.Now()
	turn := []model.Message{
		{Role: model.RoleUser, Content: userMessage, CreatedAt: now},
		{Role: model.RoleAssistant, Content: answer, CreatedAt: now},
	}
	for _, msg := range turn {
		err := uc.memoryRepo.Append(ctx, repository.AppendMessageOptions{
			ConversationID: conversationID,
			Message:        msg,
		})
		if err != nil {
			uc.l.Warnf(ctx, "assistant.usecase.recordTurn: Append failed: %v", err)
		}
	}
}

func (uc *implUseCase) acquireStream(conversationID string) bool {
	uc.streamMu.Lock()
	defer uc.streamMu.Unlock()

	if _, busy := uc.activeStreams[conversationID]; busy {
		return false
	}
	uc.activeStreams[conversationID] = struct{}{}
	return true
}

func (uc *implUseCase) releaseStream(conversationID string) {
	uc.streamMu.Lock()
	defer uc.streamMu.Unlock()
	delete(uc.activeStreams, conversationID)
}
