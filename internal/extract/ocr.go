package extract

import (
	"context"
	"fmt"
	"log"
	"os"

	"finodex/internal/domain"
)

// ocrImage runs tesseract over an image. The input bytes are written to a
// temp file that lives exactly as long as the call; the deferred remove
// runs on success and failure alike so no handle or file outlives us.
func (e *Extractor) ocrImage(ctx context.Context, data []byte, format domain.FileFormat) (string, error) {
	tmp, err := os.CreateTemp("", "finodex-ocr-*."+string(format))
	if err != nil {
		return "", fmt.Errorf("creating ocr temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			log.Printf("extract.Extractor: removing ocr temp file %s: %v", tmp.Name(), err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing ocr temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing ocr temp file: %w", err)
	}

	// tesseract <file> stdout -l deu+eng
	args := []string{tmp.Name(), "stdout", "-l", e.cfg.Languages}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("%w: tesseract failed: %v (%s)", domain.ErrNoReadableText, err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
