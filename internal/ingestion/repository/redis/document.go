package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"assistant-srv/internal/ingestion/repository"
	"assistant-srv/internal/model"
)

const documentSetKey = "assistant:context:documents"

func documentKey(documentID string) string {
	return fmt.Sprintf("assistant:context:document:%s", documentID)
}

func (r *implDocumentRepository) Save(ctx context.Context, doc model.ContextDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.Save: Failed to marshal document: %v", err)
		return repository.ErrFailedToSave
	}

	if err := r.redis.Set(ctx, documentKey(doc.ID), data, 0); err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.Save: Failed to save document: %v", err)
		return repository.ErrFailedToSave
	}
	if err := r.redis.SAdd(ctx, documentSetKey, doc.ID); err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.Save: Failed to register document: %v", err)
		return repository.ErrFailedToSave
	}
	return nil
}

func (r *implDocumentRepository) Get(ctx context.Context, documentID string) (model.ContextDocument, error) {
	data, err := r.redis.Get(ctx, documentKey(documentID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.ContextDocument{}, repository.ErrDocumentNotFound
		}
		r.l.Errorf(ctx, "ingestion.repository.redis.Get: Failed to read document: %v", err)
		return model.ContextDocument{}, err
	}

	var doc model.ContextDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.Get: Failed to unmarshal document: %v", err)
		return model.ContextDocument{}, err
	}
	return doc, nil
}

func (r *implDocumentRepository) List(ctx context.Context) ([]model.ContextDocument, error) {
	ids, err := r.redis.SMembers(ctx, documentSetKey)
	if err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.List: Failed to read document set: %v", err)
		return nil, repository.ErrFailedToList
	}

	docs := make([]model.ContextDocument, 0, len(ids))
	for _, id := range ids {
		doc, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				continue
			}
			return nil, repository.ErrFailedToList
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *implDocumentRepository) Delete(ctx context.Context, documentID string) error {
	if err := r.redis.Delete(ctx, documentKey(documentID)); err != nil {
		r.l.Errorf(ctx, "ingestion.repository.redis.Delete: Failed to delete document: %v", err)
		return err
	}
	return r.redis.GetClient().SRem(ctx, documentSetKey, documentID).Err()
}
