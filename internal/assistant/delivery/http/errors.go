package http

import (
	"errors"

	"assistant-srv/internal/assistant"
	pkgErrors "assistant-srv/pkg/errors"
)

var (
	errInvalidRequest        = pkgErrors.NewHTTPError(400, "Invalid request body")
	errConversationRequired  = pkgErrors.NewHTTPError(400, "Conversation ID is required")
	errMessageEmpty          = pkgErrors.NewHTTPError(400, "Message is empty")
	errMessageTooLong        = pkgErrors.NewHTTPError(400, "Message too long")
	errInvalidUpload         = pkgErrors.NewHTTPError(400, "Invalid upload")
	errUnsupportedAttachment = pkgErrors.NewHTTPError(400, "Unsupported attachment type")
	errAttachmentTooLarge    = pkgErrors.NewHTTPError(400, "Attachment too large")
	errAttachmentNotFound    = pkgErrors.NewHTTPError(404, "Attachment not found")
	errStreamInProgress      = pkgErrors.NewHTTPError(409, "A stream is already in progress for this conversation")
	errExtractionFailed      = pkgErrors.NewHTTPError(422, "Attachment extraction failed")
	errLLMFailed             = pkgErrors.NewHTTPError(500, "AI generation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrConversationRequired):
		return errConversationRequired
	case errors.Is(err, assistant.ErrMessageEmpty):
		return errMessageEmpty
	case errors.Is(err, assistant.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, assistant.ErrInvalidUpload):
		return errInvalidUpload
	case errors.Is(err, assistant.ErrUnsupportedAttachment):
		return errUnsupportedAttachment
	case errors.Is(err, assistant.ErrAttachmentTooLarge):
		return errAttachmentTooLarge
	case errors.Is(err, assistant.ErrAttachmentNotFound):
		return errAttachmentNotFound
	case errors.Is(err, assistant.ErrStreamInProgress):
		return errStreamInProgress
	case errors.Is(err, assistant.ErrExtractionFailed):
		return errExtractionFailed
	case errors.Is(err, assistant.ErrLLMFailed):
		return errLLMFailed
	default:
		return err
	}
}
