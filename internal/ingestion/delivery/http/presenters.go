package http

import (
	"time"

	"assistant-srv/internal/ingestion"
	"assistant-srv/internal/model"
)

type ingestDocumentReq struct {
	FileName    string
	ContentType string
	Data        []byte
}

func (r ingestDocumentReq) toInput() ingestion.IngestInput {
	return ingestion.IngestInput{
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Data:        r.Data,
	}
}

type removeDocumentReq struct {
	DocumentID string
}

func (r removeDocumentReq) toInput() ingestion.RemoveDocumentInput {
	return ingestion.RemoveDocumentInput{DocumentID: r.DocumentID}
}

type documentResp struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Status      string    `json:"status"`
	ChunkCount  int       `json:"chunk_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (h *handler) newDocumentResp(d model.ContextDocument) documentResp {
	return documentResp{
		ID:          d.ID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		Status:      d.Status,
		ChunkCount:  d.ChunkCount,
		UploadedAt:  d.UploadedAt,
	}
}

func (h *handler) newListDocumentsResp(o ingestion.ListDocumentsOutput) []documentResp {
	resp := make([]documentResp, 0, len(o.Documents))
	for _, d := range o.Documents {
		resp = append(resp, h.newDocumentResp(d))
	}
	return resp
}
