package redis

import (
	"assistant-srv/internal/assistant/repository"
	"assistant-srv/pkg/log"
	pkgRedis "assistant-srv/pkg/redis"
)

type implMemoryRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.MemoryRepository {
	return &implMemoryRepository{
		redis: redis,
		l:     l,
	}
}
