package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
)

const (
	// maxStoredMessages bounds the Redis list so abandoned conversations
	// do not grow without limit.
	maxStoredMessages = 200
)

func memoryKey(conversationID string) string {
	return fmt.Sprintf("assistant:memory:%s", conversationID)
}

func (r *implMemoryRepository) Append(ctx context.Context, opt repository.AppendMessageOptions) error {
	data, err := json.Marshal(opt.Message)
	if err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Append: Failed to marshal message: %v", err)
		return repository.ErrFailedToAppend
	}

	key := memoryKey(opt.ConversationID)
	if err := r.redis.RPush(ctx, key, data); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Append: Failed to push message: %v", err)
		return repository.ErrFailedToAppend
	}
	if err := r.redis.LTrim(ctx, key, -maxStoredMessages, -1); err != nil {
		r.l.Warnf(ctx, "assistant.repository.redis.Append: Failed to trim history: %v", err)
	}
	return nil
}

func (r *implMemoryRepository) List(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	start := int64(0)
	if opt.Limit > 0 {
		start = -int64(opt.Limit)
	}

	items, err := r.redis.LRange(ctx, memoryKey(opt.ConversationID), start, -1)
	if err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.List: Failed to read history: %v", err)
		return nil, repository.ErrFailedToList
	}

	messages := make([]model.Message, 0, len(items))
	for _, item := range items {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			r.l.Warnf(ctx, "assistant.repository.redis.List: Skipping malformed message: %v", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *implMemoryRepository) Clear(ctx context.Context, conversationID string) error {
	if err := r.redis.Delete(ctx, memoryKey(conversationID)); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Clear: Failed to delete history: %v", err)
		return err
	}
	return nil
}
