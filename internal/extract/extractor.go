package extract

import (
	"context"
	"fmt"
	"strings"

	"finodex/internal/config"
	"finodex/internal/domain"
)

// Extractor converts raw file bytes into plain text. It holds no per-call
// state; OCR resources live only for the duration of a single call.
type Extractor struct {
	cfg    config.OCRConfig
	runner Runner
}

// NewExtractor creates an Extractor using the system tesseract binary.
func NewExtractor(cfg config.OCRConfig) *Extractor {
	return &Extractor{cfg: cfg, runner: execRunner{}}
}

// NewExtractorWithRunner creates an Extractor with a custom command runner
// (for tests).
func NewExtractorWithRunner(cfg config.OCRConfig, r Runner) *Extractor {
	return &Extractor{cfg: cfg, runner: r}
}

// Extract dispatches on the declared format and returns the document's
// plain text. An empty or whitespace-only result is an error, never a
// silent empty success.
func (e *Extractor) Extract(ctx context.Context, data []byte, format domain.FileFormat) (*domain.ExtractedText, error) {
	var (
		text     string
		warnings []string
		err      error
	)

	switch {
	case format == domain.FormatPDF:
		text, err = extractPDF(data)
	case domain.ImageFormats[format]:
		text, err = e.ocrImage(ctx, data, format)
	case format == domain.FormatDOCX:
		text, warnings, err = extractDOCX(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %s extraction produced no text", domain.ErrNoReadableText, format)
	}
	return &domain.ExtractedText{Text: text, Format: format, Warnings: warnings}, nil
}
