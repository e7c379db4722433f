package http

import (
	"assistant-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/context")
	{
		api.POST("/documents", h.IngestDocument)
		api.GET("/documents", h.ListDocuments)
		api.DELETE("/documents/:document_id", h.RemoveDocument)
	}
}
