package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mzip_go/internal/repo"
	"mzip_go/internal/service"
	"mzip_go/pkg/huffman"
	"mzip_go/pkg/mzip"
)

type EncodeHandler struct {
	svc *service.EncodeService
}

func NewEncodeHandler(s *service.EncodeService) *EncodeHandler {
	return &EncodeHandler{svc: s}
}

// Encode accepts a multipart upload under the "file" field and responds
// with the raw MZIP artifact; run statistics travel in X-Mzip headers.
func (h *EncodeHandler) Encode(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, artifact, err := h.svc.Encode(c.Request.Context(), fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, huffman.ErrNoSymbols):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "file is empty"})
		case errors.Is(err, mzip.ErrNoExtension):
			c.JSON(http.StatusBadRequest, gin.H{"error": "filename has no extension"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("X-Mzip-Artifact-Name", run.ArtifactName)
	c.Header("X-Mzip-Original-Size", strconv.FormatInt(run.OriginalSize, 10))
	c.Header("X-Mzip-Compressed-Size", strconv.FormatInt(run.CompressedSize, 10))
	c.Header("X-Mzip-Padding", strconv.Itoa(run.Padding))
	c.Data(http.StatusOK, "application/octet-stream", artifact)
}

func (h *EncodeHandler) GetRun(c *gin.Context) {
	name := c.Param("name")
	run, err := h.svc.GetByName(c.Request.Context(), name)
	if err != nil {
		if err == repo.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *EncodeHandler) ListRuns(c *gin.Context) {
	runs, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}
