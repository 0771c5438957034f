package handler

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"finodex/internal/domain"
	"finodex/internal/pipeline"
	"finodex/internal/registry"
	"finodex/internal/service"
)

// DocumentHandler exposes the document processing pipeline over HTTP.
type DocumentHandler struct {
	pipeline *pipeline.Service
	registry *registry.Registry
	archive  *service.ArchiveService
}

func NewDocumentHandler(p *pipeline.Service, reg *registry.Registry, archive *service.ArchiveService) *DocumentHandler {
	return &DocumentHandler{pipeline: p, registry: reg, archive: archive}
}

// ListDocumentTypes returns the registered document type definitions.
func (h *DocumentHandler) ListDocumentTypes(c *gin.Context) {
	RespondOK(c, http.StatusOK, gin.H{"document_types": h.registry.List()})
}

// Process extracts structured data from a single uploaded document.
func (h *DocumentHandler) Process(c *gin.Context) {
	typeID := c.PostForm("document_type")
	if typeID == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "document_type is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	input, err := readUpload(fileHeader)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.pipeline.ProcessSingle(c.Request.Context(), input, typeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.archiveInputs(c, []pipeline.FileInput{input})
	RespondOK(c, http.StatusOK, result)
}

// Compare extracts every uploaded offer and ranks them against each other.
func (h *DocumentHandler) Compare(c *gin.Context) {
	typeID, inputs, ok := h.readBatch(c)
	if !ok {
		return
	}

	outcome, err := h.pipeline.ProcessComparison(c.Request.Context(), inputs, typeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.archiveInputs(c, inputs)
	RespondOK(c, http.StatusOK, outcome)
}

// Register extracts every uploaded offer and persists the results.
func (h *DocumentHandler) Register(c *gin.Context) {
	typeID, inputs, ok := h.readBatch(c)
	if !ok {
		return
	}

	outcome, err := h.pipeline.ProcessRegistration(c.Request.Context(), inputs, typeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.archiveInputs(c, inputs)
	RespondOK(c, http.StatusOK, outcome)
}

// Verify evaluates each uploaded document against the checklist of its
// declared type. The i-th entry of document_types pairs with the i-th file.
func (h *DocumentHandler) Verify(c *gin.Context) {
	typeIDs := verifyTypeIDs(c)
	if len(typeIDs) == 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "document_types is required")
		return
	}

	inputs, err := readUploads(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	outcome, err := h.pipeline.Verify(c.Request.Context(), inputs, typeIDs)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.archiveInputs(c, inputs)
	RespondOK(c, http.StatusOK, outcome)
}

// readBatch pulls document_type plus the uploaded files out of the form.
func (h *DocumentHandler) readBatch(c *gin.Context) (string, []pipeline.FileInput, bool) {
	typeID := c.PostForm("document_type")
	if typeID == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "document_type is required")
		return "", nil, false
	}

	inputs, err := readUploads(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return "", nil, false
	}
	return typeID, inputs, true
}

func (h *DocumentHandler) archiveInputs(c *gin.Context, inputs []pipeline.FileInput) {
	if !h.archive.Enabled() {
		return
	}
	for _, in := range inputs {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.FileName), "."))
		contentType := domain.AllowedFileFormats[domain.FileFormat(ext)]
		if key := h.archive.Archive(c.Request.Context(), in.FileName, contentType, in.Data); key != "" {
			log.Printf("handler.DocumentHandler: archived %s as %s", in.FileName, key)
		}
	}
}

func verifyTypeIDs(c *gin.Context) []string {
	raw := c.PostFormArray("document_types")
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func readUploads(c *gin.Context) ([]pipeline.FileInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}

	inputs := make([]pipeline.FileInput, 0, len(headers))
	for _, fh := range headers {
		in, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readUpload(fh *multipart.FileHeader) (pipeline.FileInput, error) {
	f, err := fh.Open()
	if err != nil {
		return pipeline.FileInput{}, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return pipeline.FileInput{}, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return pipeline.FileInput{FileName: filepath.Base(fh.Filename), Data: data}, nil
}
