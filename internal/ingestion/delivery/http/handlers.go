package http

import (
	"assistant-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest a context document
// @Description Upload a document into the shared retrieval context; indexing is asynchronous
// @Tags Context
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to ingest"
// @Success 200 {object} documentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/context/documents [post]
func (h *handler) IngestDocument(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestDocumentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.IngestDocument: processIngestDocumentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.IngestDocument: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDocumentResp(o.Document))
}

// @Summary List context documents
// @Description Return all documents registered in the retrieval context
// @Tags Context
// @Produce json
// @Success 200 {array} documentResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/context/documents [get]
func (h *handler) ListDocuments(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.ListDocuments(ctx)
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.ListDocuments: usecase ListDocuments failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListDocumentsResp(o))
}

// @Summary Remove a context document
// @Description Delete a document, its stored file and its vectors
// @Tags Context
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/context/documents/{document_id} [delete]
func (h *handler) RemoveDocument(c *gin.Context) {
	ctx := c.Request.Context()

	req := removeDocumentReq{DocumentID: c.Param("document_id")}

	if err := h.uc.RemoveDocument(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.RemoveDocument: usecase RemoveDocument failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
