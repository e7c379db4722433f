package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"assistant-srv/internal/assistant/repository"
	"assistant-srv/internal/model"
	"assistant-srv/pkg/log"
)

func newTestRepo() repository.AttachmentRepository {
	return New(log.Init(log.ZapConfig{Level: "error"}))
}

func TestAttachmentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get preserves upload order", func(t *testing.T) {
		repo := newTestRepo()

		for i := 0; i < 3; i++ {
			err := repo.Add(ctx, model.Attachment{
				ID:             fmt.Sprintf("att-%d", i),
				ConversationID: "conv-1",
				FileName:       fmt.Sprintf("file-%d.txt", i),
			})
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
		}

		got, err := repo.GetAll(ctx, "conv-1")
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("GetAll returned %d attachments, want 3", len(got))
		}
		for i, att := range got {
			if want := fmt.Sprintf("att-%d", i); att.ID != want {
				t.Errorf("attachment %d: got ID %s, want %s", i, att.ID, want)
			}
		}
	})

	t.Run("conversations are isolated", func(t *testing.T) {
		repo := newTestRepo()

		_ = repo.Add(ctx, model.Attachment{ID: "a", ConversationID: "conv-1"})
		_ = repo.Add(ctx, model.Attachment{ID: "b", ConversationID: "conv-2"})

		got, _ := repo.GetAll(ctx, "conv-1")
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("conv-1 attachments leaked: %+v", got)
		}
	})

	t.Run("remove deletes one attachment", func(t *testing.T) {
		repo := newTestRepo()

		_ = repo.Add(ctx, model.Attachment{ID: "a", ConversationID: "conv-1"})
		_ = repo.Add(ctx, model.Attachment{ID: "b", ConversationID: "conv-1"})

		if err := repo.Remove(ctx, "conv-1", "a"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		got, _ := repo.GetAll(ctx, "conv-1")
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("after Remove got %+v, want only b", got)
		}
	})

	t.Run("remove unknown id returns not found", func(t *testing.T) {
		repo := newTestRepo()

		if err := repo.Remove(ctx, "conv-1", "missing"); err != repository.ErrAttachmentNotFound {
			t.Errorf("Remove returned %v, want ErrAttachmentNotFound", err)
		}
	})

	t.Run("take returns and clears", func(t *testing.T) {
		repo := newTestRepo()

		_ = repo.Add(ctx, model.Attachment{ID: "a", ConversationID: "conv-1"})

		taken, err := repo.Take(ctx, "conv-1")
		if err != nil {
			t.Fatalf("Take failed: %v", err)
		}
		if len(taken) != 1 {
			t.Fatalf("Take returned %d attachments, want 1", len(taken))
		}

		left, _ := repo.GetAll(ctx, "conv-1")
		if len(left) != 0 {
			t.Errorf("attachments remain after Take: %+v", left)
		}
	})

	t.Run("concurrent take consumes each upload once", func(t *testing.T) {
		repo := newTestRepo()

		const total = 50
		for i := 0; i < total; i++ {
			_ = repo.Add(ctx, model.Attachment{
				ID:             fmt.Sprintf("att-%d", i),
				ConversationID: "conv-1",
			})
		}

		var mu sync.Mutex
		seen := make(map[string]int)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				taken, err := repo.Take(ctx, "conv-1")
				if err != nil {
					t.Errorf("Take failed: %v", err)
					return
				}
				mu.Lock()
				for _, att := range taken {
					seen[att.ID]++
				}
				mu.Unlock()
			}()
		}
		wg.Wait()

		if len(seen) != total {
			t.Errorf("consumed %d distinct attachments, want %d", len(seen), total)
		}
		for id, count := range seen {
			if count != 1 {
				t.Errorf("attachment %s consumed %d times", id, count)
			}
		}
	})

	t.Run("clear drops the conversation", func(t *testing.T) {
		repo := newTestRepo()

		_ = repo.Add(ctx, model.Attachment{ID: "a", ConversationID: "conv-1"})
		if err := repo.Clear(ctx, "conv-1"); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		got, _ := repo.GetAll(ctx, "conv-1")
		if len(got) != 0 {
			t.Errorf("attachments remain after Clear: %+v", got)
		}
	})
}
