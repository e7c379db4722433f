package usecase

import (
	"context"
	"errors"
	"testing"

	"assistant-srv/internal/retrieval"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/qdrant"
)

type fakeVoyage struct {
	vectors [][]float32
	err     error
	texts   []string
}

func (f *fakeVoyage) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.texts = texts
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors, nil
}

// fakeQdrant overrides Search; the embedded interface covers the rest.
type fakeQdrant struct {
	qdrant.IQdrant
	hits      []qdrant.SearchResult
	err       error
	lastLimit uint64
}

func (f *fakeQdrant) Search(ctx context.Context, colName string, vector []float32, limit uint64) ([]qdrant.SearchResult, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func newSearchUseCase(v *fakeVoyage, q *fakeQdrant) retrieval.UseCase {
	return New(v, q, "test-collection", log.Init(log.ZapConfig{Level: "error"}))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query rejected", func(t *testing.T) {
		uc := newSearchUseCase(&fakeVoyage{}, &fakeQdrant{})

		_, err := uc.Search(ctx, retrieval.SearchInput{})
		if !errors.Is(err, retrieval.ErrQueryRequired) {
			t.Errorf("Search returned %v, want ErrQueryRequired", err)
		}
	})

	t.Run("hits below threshold filtered out", func(t *testing.T) {
		q := &fakeQdrant{hits: []qdrant.SearchResult{
			{ID: "1", Score: 0.9, Payload: map[string]interface{}{"file_name": "a.txt", "content": "relevant"}},
			{ID: "2", Score: 0.3, Payload: map[string]interface{}{"file_name": "b.txt", "content": "noise"}},
			{ID: "3", Score: 0.5, Payload: map[string]interface{}{"content": "borderline"}},
		}}
		uc := newSearchUseCase(&fakeVoyage{vectors: [][]float32{{0.1, 0.2}}}, q)

		out, err := uc.Search(ctx, retrieval.SearchInput{Query: "question", TopK: 5, MinScore: 0.5})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(out.Documents) != 2 {
			t.Fatalf("got %d documents, want 2 above threshold: %+v", len(out.Documents), out.Documents)
		}
		if out.Documents[0].ID != "1" || out.Documents[0].FileName != "a.txt" || out.Documents[0].Content != "relevant" {
			t.Errorf("first document wrong: %+v", out.Documents[0])
		}
		// Score exactly at the threshold is kept.
		if out.Documents[1].ID != "3" {
			t.Errorf("threshold-equal hit dropped: %+v", out.Documents)
		}
	})

	t.Run("zero topk falls back to default", func(t *testing.T) {
		q := &fakeQdrant{}
		uc := newSearchUseCase(&fakeVoyage{vectors: [][]float32{{0.1}}}, q)

		if _, err := uc.Search(ctx, retrieval.SearchInput{Query: "question"}); err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if q.lastLimit != retrieval.DefaultTopK {
			t.Errorf("search limit %d, want default %d", q.lastLimit, retrieval.DefaultTopK)
		}
	})

	t.Run("embedding failure", func(t *testing.T) {
		uc := newSearchUseCase(&fakeVoyage{err: errors.New("api down")}, &fakeQdrant{})

		_, err := uc.Search(ctx, retrieval.SearchInput{Query: "question"})
		if !errors.Is(err, retrieval.ErrEmbeddingFailed) {
			t.Errorf("Search returned %v, want ErrEmbeddingFailed", err)
		}
	})

	t.Run("vector search failure", func(t *testing.T) {
		uc := newSearchUseCase(
			&fakeVoyage{vectors: [][]float32{{0.1}}},
			&fakeQdrant{err: errors.New("grpc unavailable")},
		)

		_, err := uc.Search(ctx, retrieval.SearchInput{Query: "question"})
		if !errors.Is(err, retrieval.ErrSearchFailed) {
			t.Errorf("Search returned %v, want ErrSearchFailed", err)
		}
	})
}
