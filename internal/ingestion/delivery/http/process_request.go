package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIngestDocumentRequest(c *gin.Context) (ingestDocumentReq, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ingestDocumentReq{}, errInvalidDocument
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ingestDocumentReq{}, errInvalidDocument
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ingestDocumentReq{}, errInvalidDocument
	}

	return ingestDocumentReq{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
