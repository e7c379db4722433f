package redis

import (
	"assistant-srv/internal/ingestion/repository"
	"assistant-srv/pkg/log"
	pkgRedis "assistant-srv/pkg/redis"
)

type implDocumentRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.DocumentRepository {
	return &implDocumentRepository{
		redis: redis,
		l:     l,
	}
}
