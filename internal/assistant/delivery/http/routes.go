package http

import (
	"assistant-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/chat")
	{
		api.POST("/stream", h.Stream)
		api.POST("/attachments", h.UploadAttachment)
		api.GET("/attachments", h.ListAttachments)
		api.DELETE("/attachments/:attachment_id", h.RemoveAttachment)
		api.GET("/:conversation_id/history", h.GetHistory)
		api.DELETE("/:conversation_id", h.CloseChat)
	}
}
