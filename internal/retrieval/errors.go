package retrieval

import "errors"

var (
	ErrQueryRequired   = errors.New("retrieval: query is required")
	ErrEmbeddingFailed = errors.New("retrieval: embedding failed")
	ErrSearchFailed    = errors.New("retrieval: vector search failed")
)
