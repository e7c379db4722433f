package usecase

import (
	"strings"

	"assistant-srv/internal/assistant"
)

func (uc *implUseCase) validateStreamInput(input assistant.StreamInput) error {
	if input.ConversationID == "" {
		return assistant.ErrConversationRequired
	}
	if len(strings.TrimSpace(input.Message)) < assistant.MinMessageLength {
		return assistant.ErrMessageEmpty
	}
	if len(input.Message) > assistant.MaxMessageLength {
		return assistant.ErrMessageTooLong
	}
	return nil
}

// isBlocked reports whether the message hits a configured blocked term.
func (uc *implUseCase) isBlocked(message string) bool {
	if len(uc.cfg.BlockedTerms) == 0 {
		return false
	}
	lower := strings.ToLower(message)
	for _, term := range uc.cfg.BlockedTerms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
