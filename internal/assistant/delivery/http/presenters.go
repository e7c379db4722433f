package http

import (
	"time"

	"assistant-srv/internal/assistant"
	"assistant-srv/internal/model"
)

type streamReq struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
	SystemPrompt   string `json:"system_prompt,omitempty"`
}

func (r streamReq) toInput() assistant.StreamInput {
	return assistant.StreamInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
		SystemPrompt:   r.SystemPrompt,
	}
}

type uploadAttachmentReq struct {
	ConversationID string
	FileName       string
	ContentType    string
	Data           []byte
}

func (r uploadAttachmentReq) toInput() assistant.UploadAttachmentInput {
	return assistant.UploadAttachmentInput{
		ConversationID: r.ConversationID,
		FileName:       r.FileName,
		ContentType:    r.ContentType,
		Data:           r.Data,
	}
}

type listAttachmentsReq struct {
	ConversationID string
}

func (r listAttachmentsReq) toInput() assistant.ListAttachmentsInput {
	return assistant.ListAttachmentsInput{ConversationID: r.ConversationID}
}

type removeAttachmentReq struct {
	ConversationID string
	AttachmentID   string
}

func (r removeAttachmentReq) toInput() assistant.RemoveAttachmentInput {
	return assistant.RemoveAttachmentInput{
		ConversationID: r.ConversationID,
		AttachmentID:   r.AttachmentID,
	}
}

type getHistoryReq struct {
	ConversationID string
}

func (r getHistoryReq) toInput() assistant.GetHistoryInput {
	return assistant.GetHistoryInput{ConversationID: r.ConversationID}
}

type closeChatReq struct {
	ConversationID string
}

func (r closeChatReq) toInput() assistant.CloseChatInput {
	return assistant.CloseChatInput{ConversationID: r.ConversationID}
}

type attachmentResp struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	FileName       string    `json:"file_name"`
	ContentType    string    `json:"content_type"`
	Kind           string    `json:"kind"`
	Size           int       `json:"size"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func (h *handler) newAttachmentResp(a model.Attachment) attachmentResp {
	return attachmentResp{
		ID:             a.ID,
		ConversationID: a.ConversationID,
		FileName:       a.FileName,
		ContentType:    a.ContentType,
		Kind:           string(a.Kind),
		Size:           len(a.Data),
		UploadedAt:     a.UploadedAt,
	}
}

func (h *handler) newListAttachmentsResp(o assistant.ListAttachmentsOutput) []attachmentResp {
	resp := make([]attachmentResp, 0, len(o.Attachments))
	for _, a := range o.Attachments {
		resp = append(resp, h.newAttachmentResp(a))
	}
	return resp
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newHistoryResp(o assistant.GetHistoryOutput) historyResp {
	resp := historyResp{Messages: make([]messageResp, 0, len(o.Messages))}
	for _, m := range o.Messages {
		resp.Messages = append(resp.Messages, messageResp{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp
}
