package usecase

import (
	"assistant-srv/internal/retrieval"
	"assistant-srv/pkg/log"
	"assistant-srv/pkg/qdrant"
	"assistant-srv/pkg/voyage"
)

type implUseCase struct {
	voyage     voyage.IVoyage
	qdrant     qdrant.IQdrant
	collection string
	l          log.Logger
}

// New - Factory function
func New(
	voyage voyage.IVoyage,
	qdrant qdrant.IQdrant,
	collection string,
	l log.Logger,
) retrieval.UseCase {
	return &implUseCase{
		voyage:     voyage,
		qdrant:     qdrant,
		collection: collection,
		l:          l,
	}
}
