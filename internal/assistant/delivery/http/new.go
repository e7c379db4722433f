package http

import (
	"assistant-srv/internal/assistant"
	"assistant-srv/internal/middleware"
	"assistant-srv/pkg/discord"
	"assistant-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for assistant HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      assistant.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc assistant.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
