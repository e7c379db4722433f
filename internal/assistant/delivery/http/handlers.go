package http

import (
	"io"

	"assistant-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Stream a chat completion
// @Description Send a message and receive the answer as a stream of SSE token deltas
// @Tags Assistant
// @Accept json
// @Produce text/event-stream
// @Param body body streamReq true "Stream request"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/chat/stream [post]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStreamRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Stream: processStreamRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	events, err := h.uc.Stream(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Stream: usecase Stream failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		switch {
		case ev.Err != nil:
			c.SSEvent("error", ev.Err.Error())
			return false
		case ev.Done:
			c.SSEvent("done", "")
			return false
		default:
			c.SSEvent("message", ev.Delta)
			return true
		}
	})
}

// @Summary Upload a conversation attachment
// @Description Attach a file to a conversation; it is consumed by the next completion turn
// @Tags Assistant
// @Accept multipart/form-data
// @Produce json
// @Param conversation_id formData string true "Conversation ID"
// @Param file formData file true "File to attach"
// @Success 200 {object} attachmentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/chat/attachments [post]
func (h *handler) UploadAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadAttachmentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.UploadAttachment: processUploadAttachmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UploadAttachment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.UploadAttachment: usecase UploadAttachment failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAttachmentResp(o.Attachment))
}

// @Summary List conversation attachments
// @Description Return pending attachments of a conversation
// @Tags Assistant
// @Produce json
// @Param conversation_id query string true "Conversation ID"
// @Success 200 {array} attachmentResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat/attachments [get]
func (h *handler) ListAttachments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAttachmentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.ListAttachments: processListAttachmentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListAttachments(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.ListAttachments: usecase ListAttachments failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListAttachmentsResp(o))
}

// @Summary Remove a conversation attachment
// @Description Remove a pending attachment before it is consumed
// @Tags Assistant
// @Produce json
// @Param attachment_id path string true "Attachment ID"
// @Param conversation_id query string true "Conversation ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/chat/attachments/{attachment_id} [delete]
func (h *handler) RemoveAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveAttachmentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.RemoveAttachment: processRemoveAttachmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.RemoveAttachment(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.RemoveAttachment: usecase RemoveAttachment failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Get conversation history
// @Description Return the recorded messages of a conversation
// @Tags Assistant
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} historyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat/{conversation_id}/history [get]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetHistoryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.GetHistory: processGetHistoryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetHistory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.GetHistory: usecase GetHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newHistoryResp(o))
}

// @Summary Close a conversation
// @Description Drop the conversation history and pending attachments
// @Tags Assistant
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat/{conversation_id} [delete]
func (h *handler) CloseChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCloseChatRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.CloseChat: processCloseChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.CloseChat(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.CloseChat: usecase CloseChat failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
