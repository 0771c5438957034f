// Package pipeline orchestrates document processing: extraction, prompt
// construction, model invocation, response validation, scoring, and the
// multi-document aggregation modes.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"finodex/internal/domain"
	"finodex/internal/extract"
	"finodex/internal/parse"
	"finodex/internal/port"
	"finodex/internal/prompt"
	"finodex/internal/registry"
	"finodex/internal/score"
)

// FileInput is one uploaded file as handed over by the ingress layer.
// Transport-level validation happened there; content validation happens
// here.
type FileInput struct {
	FileName string
	Data     []byte
}

// Service is the document processing pipeline. All its dependencies are
// read-only or stateless, so a single instance serves concurrent requests.
type Service struct {
	registry   *registry.Registry
	checklists *registry.ChecklistStore
	extractor  *extract.Extractor
	gateway    port.ModelGateway
	offers     port.OfferRepository
}

// NewService wires the pipeline from its collaborators. The offer
// repository is only exercised by the registration mode.
func NewService(
	reg *registry.Registry,
	checklists *registry.ChecklistStore,
	extractor *extract.Extractor,
	gateway port.ModelGateway,
	offers port.OfferRepository,
) *Service {
	return &Service{
		registry:   reg,
		checklists: checklists,
		extractor:  extractor,
		gateway:    gateway,
		offers:     offers,
	}
}

// ProcessSingle runs one document through the full extraction pipeline.
func (s *Service) ProcessSingle(ctx context.Context, file FileInput, typeID string) (*domain.SingleResult, error) {
	start := time.Now()

	record, confidence, err := s.extractRecord(ctx, file, typeID)
	if err != nil {
		return nil, err
	}

	return &domain.SingleResult{
		ExtractedData:    record,
		Confidence:       confidence,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// extractRecord is the shared head of every pipeline mode: content
// validation, text extraction, prompt construction, model call, response
// parsing, and scoring. Validation failures surface before any model
// call is made.
func (s *Service) extractRecord(ctx context.Context, file FileInput, typeID string) (domain.ParsedRecord, float64, error) {
	if err := s.registry.ValidateFile(file.FileName, int64(len(file.Data)), typeID); err != nil {
		return nil, 0, err
	}
	def, _ := s.registry.Get(typeID)

	template, err := s.registry.PromptTemplate(typeID)
	if err != nil {
		return nil, 0, err
	}

	format := formatOf(file.FileName)
	extracted, err := s.extractor.Extract(ctx, file.Data, format)
	if err != nil {
		return nil, 0, err
	}

	reply, err := s.gateway.Process(ctx, port.GatewayRequest{
		Prompt:         prompt.Build(template, extracted.Text),
		DocumentTypeID: typeID,
	})
	if err != nil {
		return nil, 0, err
	}

	record, err := parse.Record(reply)
	if err != nil {
		return nil, 0, err
	}

	return record, score.Confidence(record, def), nil
}

// checkFileCount validates a multi-file batch against the type's declared
// bounds. minimum overrides the type's MinFiles when the mode needs more
// (comparison needs at least two offers).
func (s *Service) checkFileCount(typeID string, count, minimum int) error {
	def, ok := s.registry.Get(typeID)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrDocumentTypeNotFound, typeID)
	}
	min := def.MinFiles
	if minimum > min {
		min = minimum
	}
	if min > 0 && count < min {
		return fmt.Errorf("%w: at least %d files required for %s, got %d", domain.ErrValidation, min, typeID, count)
	}
	if def.MaxFiles > 0 && count > def.MaxFiles {
		return fmt.Errorf("%w: at most %d files allowed for %s, got %d", domain.ErrValidation, def.MaxFiles, typeID, count)
	}
	return nil
}

// formatOf maps a file name's extension onto a FileFormat. Unknown
// extensions come back as-is and fail in the extractor's dispatch.
func formatOf(fileName string) domain.FileFormat {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if f, ok := domain.AllowedExtensions[ext]; ok {
		return f
	}
	return domain.FileFormat(ext)
}
