package repository

import "assistant-srv/internal/model"

type AppendMessageOptions struct {
	ConversationID string
	Message        model.Message
}

type ListMessagesOptions struct {
	ConversationID string
	Limit          int
}
