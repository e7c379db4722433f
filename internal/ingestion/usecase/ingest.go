package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"assistant-srv/internal/ingestion"
	"assistant-srv/internal/model"
	pkgMinio "assistant-srv/pkg/minio"
)

// Ingest - Accept a context document
// Flow: validate -> upload raw file to object storage -> register record
// -> publish ingestion event. Indexing happens asynchronously on the
// consumer side.
func (uc *implUseCase) Ingest(ctx context.Context, input ingestion.IngestInput) (ingestion.IngestOutput, error) {
	if input.FileName == "" || len(input.Data) == 0 {
		return ingestion.IngestOutput{}, ingestion.ErrInvalidDocument
	}
	if !isSupportedType(input.ContentType) {
		return ingestion.IngestOutput{}, ingestion.ErrUnsupportedType
	}

	documentID := uuid.NewString()
	objectName := fmt.Sprintf("context/%s/%s", documentID, input.FileName)

	_, err := uc.minio.UploadFile(ctx, pkgMinio.UploadRequest{
		BucketName:  uc.cfg.Bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(input.Data),
		Size:        int64(len(input.Data)),
		ContentType: input.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: UploadFile failed: %v", err)
		return ingestion.IngestOutput{}, ingestion.ErrUploadFailed
	}

	doc := model.ContextDocument{
		ID:          documentID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		ObjectName:  objectName,
		Size:        int64(len(input.Data)),
		Status:      model.DocumentStatusPending,
		UploadedAt:  time.Now(),
	}
	if err := uc.docRepo.Save(ctx, doc); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: Save failed: %v", err)
		return ingestion.IngestOutput{}, err
	}

	err = uc.producer.PublishIngestRequested(ctx, ingestion.IngestRequested{
		DocumentID:  documentID,
		ObjectName:  objectName,
		FileName:    input.FileName,
		ContentType: input.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Ingest: PublishIngestRequested failed: %v", err)
		return ingestion.IngestOutput{}, ingestion.ErrPublishFailed
	}

	return ingestion.IngestOutput{Document: doc}, nil
}

func isSupportedType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text") || strings.Contains(ct, "pdf")
}
