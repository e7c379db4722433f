package assistant

import "errors"

// Domain errors
var (
	ErrConversationRequired = errors.New("assistant: conversation_id is required")
	ErrMessageEmpty         = errors.New("assistant: message is empty")
	ErrMessageTooLong       = errors.New("assistant: message too long")

	ErrInvalidUpload         = errors.New("assistant: invalid upload")
	ErrUnsupportedAttachment = errors.New("assistant: unsupported attachment type")
	ErrAttachmentTooLarge    = errors.New("assistant: attachment too large")
	ErrAttachmentNotFound    = errors.New("assistant: attachment not found")

	ErrStreamInProgress = errors.New("assistant: a stream is already in progress for this conversation")
	ErrExtractionFailed = errors.New("assistant: attachment extraction failed")
	ErrLLMFailed        = errors.New("assistant: LLM generation failed")
)
