package retrieval

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Search embeds the query and returns chunks above the score threshold.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
