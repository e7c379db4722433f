package assistant

import "assistant-srv/internal/model"

const (
	// MaxMemoryMessages is the number of recent turns replayed into each prompt.
	MaxMemoryMessages = 20
	MinMessageLength  = 1
	MaxMessageLength  = 4000
)

type StreamInput struct {
	ConversationID string
	Message        string
	SystemPrompt   string
}

// StreamEvent is one event on a completion stream. Exactly one terminal
// event (Done or Err set) is delivered, after which the channel closes.
type StreamEvent struct {
	Delta string
	Err   error
	Done  bool
}

type UploadAttachmentInput struct {
	ConversationID string
	FileName       string
	ContentType    string
	Data           []byte
}

type UploadAttachmentOutput struct {
	Attachment model.Attachment
}

type RemoveAttachmentInput struct {
	ConversationID string
	AttachmentID   string
}

type ListAttachmentsInput struct {
	ConversationID string
}

type ListAttachmentsOutput struct {
	Attachments []model.Attachment
}

type GetHistoryInput struct {
	ConversationID string
}

type GetHistoryOutput struct {
	Messages []model.Message
}

type CloseChatInput struct {
	ConversationID string
}
