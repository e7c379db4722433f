package usecase

import (
	"context"

	"assistant-srv/internal/retrieval"
)

// Search - Similarity search over the context collection
// Flow: validate -> embed query -> vector search -> threshold filter
func (uc *implUseCase) Search(ctx context.Context, input retrieval.SearchInput) (retrieval.SearchOutput, error) {
	if input.Query == "" {
		return retrieval.SearchOutput{}, retrieval.ErrQueryRequired
	}
	if input.TopK <= 0 {
		input.TopK = retrieval.DefaultTopK
	}

	vectors, err := uc.voyage.Embed(ctx, []string{input.Query})
	if err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Search: Embed failed: %v", err)
		return retrieval.SearchOutput{}, retrieval.ErrEmbeddingFailed
	}
	if len(vectors) == 0 {
		return retrieval.SearchOutput{}, retrieval.ErrEmbeddingFailed
	}

	hits, err := uc.qdrant.Search(ctx, uc.collection, vectors[0], uint64(input.TopK))
	if err != nil {
		uc.l.Errorf(ctx, "retrieval.usecase.Search: Search failed: %v", err)
		return retrieval.SearchOutput{}, retrieval.ErrSearchFailed
	}

	docs := make([]retrieval.RetrievedDocument, 0, len(hits))
	for _, hit := range hits {
		if float64(hit.Score) < input.MinScore {
			continue
		}
		docs = append(docs, retrieval.RetrievedDocument{
			ID:       hit.ID,
			FileName: payloadString(hit.Payload, "file_name"),
			Content:  payloadString(hit.Payload, "content"),
			Score:    float64(hit.Score),
		})
	}

	return retrieval.SearchOutput{Documents: docs}, nil
}

func payloadString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
