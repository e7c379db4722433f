package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"assistant-srv/internal/ingestion"
	"assistant-srv/internal/model"
	"assistant-srv/pkg/qdrant"
)

// ProcessDocument - Index a stored context document
// Flow: download -> extract text -> chunk -> embed batches in parallel
// -> upsert vectors -> mark indexed
func (uc *implUseCase) ProcessDocument(ctx context.Context, input ingestion.ProcessDocumentInput) (ingestion.ProcessDocumentOutput, error) {
	reader, _, err := uc.minio.DownloadFile(ctx, uc.cfg.Bucket, input.ObjectName)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ProcessDocument: DownloadFile failed: %v", err)
		uc.markFailed(ctx, input.DocumentID)
		return ingestion.ProcessDocumentOutput{}, ingestion.ErrDownloadFailed
	}
	defer reader.Close()

	text, err := uc.extractor.Extract(ctx, reader, input.ContentType)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ProcessDocument: Extract failed: %v", err)
		uc.markFailed(ctx, input.DocumentID)
		return ingestion.ProcessDocumentOutput{}, ingestion.ErrExtractionFailed
	}

	chunks := uc.splitText(text)
	if len(chunks) == 0 {
		uc.markFailed(ctx, input.DocumentID)
		return ingestion.ProcessDocumentOutput{}, ingestion.ErrEmptyDocumentText
	}

	points, err := uc.embedChunks(ctx, input, chunks)
	if err != nil {
		uc.markFailed(ctx, input.DocumentID)
		return ingestion.ProcessDocumentOutput{}, err
	}

	if err := uc.qdrant.UpsertPoints(ctx, uc.cfg.Collection, points); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ProcessDocument: UpsertPoints failed: %v", err)
		uc.markFailed(ctx, input.DocumentID)
		return ingestion.ProcessDocumentOutput{}, ingestion.ErrIndexingFailed
	}

	uc.markIndexed(ctx, input.DocumentID, len(chunks))

	uc.l.Infof(ctx, "ingestion.usecase.ProcessDocument: Indexed %d chunks for %s", len(chunks), input.FileName)
	return ingestion.ProcessDocumentOutput{
		DocumentID:    input.DocumentID,
		ChunksIndexed: len(chunks),
	}, nil
}

// embedChunks embeds chunk batches in parallel and builds vector points.
func (uc *implUseCase) embedChunks(ctx context.Context, input ingestion.ProcessDocumentInput, chunks []string) ([]qdrant.Point, error) {
	var (
		mu     sync.Mutex
		points = make([]qdrant.Point, 0, len(chunks))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ingestion.MaxConcurrency)

	for start := 0; start < len(chunks); start += ingestion.EmbedBatchSize {
		end := start + ingestion.EmbedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batchStart := start
		batch := chunks[start:end]

		g.Go(func() error {
			vectors, err := uc.voyage.Embed(gctx, batch)
			if err != nil {
				return fmt.Errorf("%w: %v", ingestion.ErrEmbeddingFailed, err)
			}
			if len(vectors) != len(batch) {
				return fmt.Errorf("%w: got %d vectors for %d chunks", ingestion.ErrEmbeddingFailed, len(vectors), len(batch))
			}

			mu.Lock()
			defer mu.Unlock()
			for i, vector := range vectors {
				points = append(points, qdrant.Point{
					ID:     chunkPointID(input.DocumentID, batchStart+i),
					Vector: vector,
					Payload: map[string]interface{}{
						"document_id": input.DocumentID,
						"file_name":   input.FileName,
						"chunk_index": batchStart + i,
						"content":     batch[i],
					},
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.embedChunks: %v", err)
		return nil, ingestion.ErrEmbeddingFailed
	}
	return points, nil
}

func (uc *implUseCase) markIndexed(ctx context.Context, documentID string, chunkCount int) {
	doc, err := uc.docRepo.Get(ctx, documentID)
	if err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.markIndexed: Get failed: %v", err)
		return
	}
	doc.Status = model.DocumentStatusIndexed
	doc.ChunkCount = chunkCount
	if err := uc.docRepo.Save(ctx, doc); err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.markIndexed: Save failed: %v", err)
	}
}

func (uc *implUseCase) markFailed(ctx context.Context, documentID string) {
	doc, err := uc.docRepo.Get(ctx, documentID)
	if err != nil {
		return
	}
	doc.Status = model.DocumentStatusFailed
	if err := uc.docRepo.Save(ctx, doc); err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.markFailed: Save failed: %v", err)
	}
}
