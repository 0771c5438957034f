package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"finodex/internal/port"
)

// ArchiveService stores processed document originals in object storage.
// A nil storage disables archival entirely.
type ArchiveService struct {
	storage port.ObjectStorage
	bucket  string
}

func NewArchiveService(storage port.ObjectStorage, bucket string) *ArchiveService {
	return &ArchiveService{storage: storage, bucket: bucket}
}

// Enabled reports whether archival is configured.
func (s *ArchiveService) Enabled() bool {
	return s != nil && s.storage != nil
}

// Archive uploads the document bytes under a fresh prefix and returns the
// object key. Failures are logged and swallowed; archival is best effort
// and must never fail document processing.
func (s *ArchiveService) Archive(ctx context.Context, fileName, contentType string, data []byte) string {
	if !s.Enabled() {
		return ""
	}
	key := fmt.Sprintf("documents/%s/%s", uuid.New().String(), fileName)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("service.ArchiveService: upload of %s failed: %v", fileName, err)
		return ""
	}
	return key
}
