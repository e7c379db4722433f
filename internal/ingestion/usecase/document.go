package usecase

import (
	"context"
	"errors"

	"assistant-srv/internal/ingestion"
	"assistant-srv/internal/ingestion/repository"
)

func (uc *implUseCase) ListDocuments(ctx context.Context) (ingestion.ListDocumentsOutput, error) {
	docs, err := uc.docRepo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ListDocuments: List failed: %v", err)
		return ingestion.ListDocumentsOutput{}, err
	}
	return ingestion.ListDocumentsOutput{Documents: docs}, nil
}

// RemoveDocument deletes the raw file, its vectors and its record.
func (uc *implUseCase) RemoveDocument(ctx context.Context, input ingestion.RemoveDocumentInput) error {
	doc, err := uc.docRepo.Get(ctx, input.DocumentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ingestion.ErrDocumentNotFound
		}
		return err
	}

	for i := 0; i < doc.ChunkCount; i++ {
		if err := uc.qdrant.DeletePoint(ctx, uc.cfg.Collection, chunkPointID(doc.ID, i)); err != nil {
			uc.l.Warnf(ctx, "ingestion.usecase.RemoveDocument: DeletePoint failed: %v", err)
		}
	}

	if err := uc.minio.DeleteFile(ctx, uc.cfg.Bucket, doc.ObjectName); err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.RemoveDocument: DeleteFile failed: %v", err)
	}

	if err := uc.docRepo.Delete(ctx, doc.ID); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.RemoveDocument: Delete failed: %v", err)
		return err
	}
	return nil
}
