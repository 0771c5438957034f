package port

import (
	"context"

	"finodex/internal/domain"
)

// OfferRepository persists registered offer records.
type OfferRepository interface {
	Save(ctx context.Context, rec *domain.OfferRecord) error
	List(ctx context.Context, documentType string, offset, limit int) ([]domain.OfferRecord, int, error)
}
