package redis

import (
	"context"
	"encoding/json"
	"testing"

	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
	"assistant-srv/pkg/log"
	pkgRedis "assistant-srv/pkg/redis"
)

// fakeRedis backs the list operations with an in-memory map; the embedded
// interface covers methods this repository never touches.
type fakeRedis struct {
	pkgRedis.IRedis
	lists map[string][]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: make(map[string][]string)}
}

func (f *fakeRedis) RPush(ctx context.Context, key string, values ...interface{}) error {
	for _, v := range values {
		switch val := v.(type) {
		case []byte:
			f.lists[key] = append(f.lists[key], string(val))
		case string:
			f.lists[key] = append(f.lists[key], val)
		}
	}
	return nil
}

func (f *fakeRedis) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	list := f.lists[key]
	n := int64(len(list))
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if start > stop || start >= n {
		return nil, nil
	}
	if stop >= n {
		stop = n - 1
	}
	return append([]string(nil), list[start:stop+1]...), nil
}

func (f *fakeRedis) LTrim(ctx context.Context, key string, start, stop int64) error {
	kept, err := f.LRange(ctx, key, start, stop)
	if err != nil {
		return err
	}
	f.lists[key] = kept
	return nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.lists, key)
	}
	return nil
}

func newMemoryRepo(f *fakeRedis) repository.MemoryRepository {
	return New(f, log.Init(log.ZapConfig{Level: "error"}))
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	appendMsg := func(t *testing.T, repo repository.MemoryRepository, conv, role, content string) {
		t.Helper()
		err := repo.Append(ctx, repository.AppendMessageOptions{
			ConversationID: conv,
			Message:        model.Message{Role: role, Content: content},
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	t.Run("append and list in order", func(t *testing.T) {
		repo := newMemoryRepo(newFakeRedis())

		appendMsg(t, repo, "conv-1", model.RoleUser, "question")
		appendMsg(t, repo, "conv-1", model.RoleAssistant, "answer")

		got, err := repo.List(ctx, repository.ListMessagesOptions{ConversationID: "conv-1", Limit: 10})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d messages, want 2", len(got))
		}
		if got[0].Role != model.RoleUser || got[0].Content != "question" {
			t.Errorf("first message wrong: %+v", got[0])
		}
		if got[1].Role != model.RoleAssistant || got[1].Content != "answer" {
			t.Errorf("second message wrong: %+v", got[1])
		}
	})

	t.Run("list returns the most recent window", func(t *testing.T) {
		repo := newMemoryRepo(newFakeRedis())

		for i := 0; i < 10; i++ {
			appendMsg(t, repo, "conv-1", model.RoleUser, string(rune('a'+i)))
		}

		got, err := repo.List(ctx, repository.ListMessagesOptions{ConversationID: "conv-1", Limit: 3})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d messages, want window of 3", len(got))
		}
		if got[0].Content != "h" || got[2].Content != "j" {
			t.Errorf("wrong window: %+v", got)
		}
	})

	t.Run("stored history is capped", func(t *testing.T) {
		f := newFakeRedis()
		repo := newMemoryRepo(f)

		for i := 0; i < maxStoredMessages+50; i++ {
			appendMsg(t, repo, "conv-1", model.RoleUser, "m")
		}

		if n := len(f.lists[memoryKey("conv-1")]); n != maxStoredMessages {
			t.Errorf("stored %d messages, want cap of %d", n, maxStoredMessages)
		}
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		f := newFakeRedis()
		repo := newMemoryRepo(f)

		appendMsg(t, repo, "conv-1", model.RoleUser, "valid")
		f.lists[memoryKey("conv-1")] = append(f.lists[memoryKey("conv-1")], "{not json")

		got, err := repo.List(ctx, repository.ListMessagesOptions{ConversationID: "conv-1", Limit: 10})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 1 || got[0].Content != "valid" {
			t.Errorf("malformed entry not skipped: %+v", got)
		}
	})

	t.Run("clear drops the history", func(t *testing.T) {
		repo := newMemoryRepo(newFakeRedis())

		appendMsg(t, repo, "conv-1", model.RoleUser, "question")
		if err := repo.Clear(ctx, "conv-1"); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		got, _ := repo.List(ctx, repository.ListMessagesOptions{ConversationID: "conv-1", Limit: 10})
		if len(got) != 0 {
			t.Errorf("messages remain after Clear: %+v", got)
		}
	})

	t.Run("messages round-trip as json", func(t *testing.T) {
		f := newFakeRedis()
		repo := newMemoryRepo(f)

		appendMsg(t, repo, "conv-1", model.RoleUser, "question")

		var stored model.Message
		if err := json.Unmarshal([]byte(f.lists[memoryKey("conv-1")][0]), &stored); err != nil {
			t.Fatalf("stored entry is not valid JSON: %v", err)
		}
		if stored.Role != model.RoleUser || stored.Content != "question" {
			t.Errorf("stored message wrong: %+v", stored)
		}
	})
}
