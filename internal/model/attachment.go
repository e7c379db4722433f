package model

import "time"

// AttachmentKind tells how an attachment enters the prompt.
type AttachmentKind string

const (
	// AttachmentKindDocument is inlined into the user message as text.
	AttachmentKindDocument AttachmentKind = "DOCUMENT"
	// AttachmentKindImage is sent to the model as inline media.
	AttachmentKindImage AttachmentKind = "IMAGE"
)

// Attachment is a file uploaded into a conversation. It lives in memory
// for the duration of the conversation and is consumed by the next
// completion request.
type Attachment struct {
	ID             string
	ConversationID string
	FileName       string
	ContentType    string
	Data           []byte
	Kind           AttachmentKind
	UploadedAt     time.Time
}
