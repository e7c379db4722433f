package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processStreamRequest(c *gin.Context) (streamReq, error) {
	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, nil
}

func (h *handler) processUploadAttachmentRequest(c *gin.Context) (uploadAttachmentReq, error) {
	conversationID := c.PostForm("conversation_id")
	if conversationID == "" {
		return uploadAttachmentReq{}, errConversationRequired
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return uploadAttachmentReq{}, errInvalidUpload
	}

	file, err := fileHeader.Open()
	if err != nil {
		return uploadAttachmentReq{}, errInvalidUpload
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return uploadAttachmentReq{}, errInvalidUpload
	}

	return uploadAttachmentReq{
		ConversationID: conversationID,
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Data:           data,
	}, nil
}

func (h *handler) processListAttachmentsRequest(c *gin.Context) (listAttachmentsReq, error) {
	req := listAttachmentsReq{
		ConversationID: c.Query("conversation_id"),
	}
	if req.ConversationID == "" {
		return req, errConversationRequired
	}
	return req, nil
}

func (h *handler) processRemoveAttachmentRequest(c *gin.Context) (removeAttachmentReq, error) {
	req := removeAttachmentReq{
		ConversationID: c.Query("conversation_id"),
		AttachmentID:   c.Param("attachment_id"),
	}
	if req.ConversationID == "" {
		return req, errConversationRequired
	}
	return req, nil
}

func (h *handler) processGetHistoryRequest(c *gin.Context) (getHistoryReq, error) {
	return getHistoryReq{
		ConversationID: c.Param("conversation_id"),
	}, nil
}

func (h *handler) processCloseChatRequest(c *gin.Context) (closeChatReq, error) {
	return closeChatReq{
		ConversationID: c.Param("conversation_id"),
	}, nil
}
