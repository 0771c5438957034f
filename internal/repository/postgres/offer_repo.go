package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"finodex/internal/domain"
	"finodex/internal/port"
)

type offerRepo struct {
	db *sqlx.DB
}

// NewOfferRepo creates a new PostgreSQL-backed OfferRepository.
func NewOfferRepo(db *sqlx.DB) port.OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Save(ctx context.Context, rec *domain.OfferRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO offers (id, document_type, file_name, fields, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.DocumentType, rec.FileName, rec.FieldsJSON, rec.Confidence, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("offerRepo.Save: %w", err)
	}
	return nil
}

func (r *offerRepo) List(ctx context.Context, documentType string, offset, limit int) ([]domain.OfferRecord, int, error) {
	if limit <= 0 {
		limit = 50
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM offers WHERE ($1 = '' OR document_type = $1)`
	if err := r.db.GetContext(ctx, &total, countQuery, documentType); err != nil {
		return nil, 0, fmt.Errorf("offerRepo.List count: %w", err)
	}

	query := `SELECT id, document_type, file_name, fields, confidence, created_at
		FROM offers
		WHERE ($1 = '' OR document_type = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`
	var recs []domain.OfferRecord
	if err := r.db.SelectContext(ctx, &recs, query, documentType, offset, limit); err != nil {
		return nil, 0, fmt.Errorf("offerRepo.List: %w", err)
	}

	for i := range recs {
		if len(recs[i].FieldsJSON) == 0 {
			continue
		}
		if err := json.Unmarshal(recs[i].FieldsJSON, &recs[i].Fields); err != nil {
			return nil, 0, fmt.Errorf("offerRepo.List decoding fields for %s: %w", recs[i].ID, err)
		}
	}
	return recs, total, nil
}
