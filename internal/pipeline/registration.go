package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"finodex/internal/domain"
)

// ProcessRegistration extracts every file in input order, enriches the
// records with derived fields, and forwards them for persistence. An
// extraction failure aborts the batch; persistence failures do not —
// partial success is reported through the persistence outcome.
func (s *Service) ProcessRegistration(ctx context.Context, files []FileInput, typeID string) (*domain.RegistrationOutcome, error) {
	start := time.Now()

	if err := s.checkFileCount(typeID, len(files), 1); err != nil {
		return nil, err
	}

	offers := make([]domain.OfferExtraction, 0, len(files))
	for _, file := range files {
		record, confidence, err := s.extractRecord(ctx, file, typeID)
		if err != nil {
			return nil, fmt.Errorf("offer %q: %w", file.FileName, err)
		}
		enrichRecord(record)
		offers = append(offers, domain.OfferExtraction{
			FileName:   file.FileName,
			Data:       record,
			Confidence: confidence,
		})
	}

	outcome := domain.PersistenceOutcome{RequestedCount: len(offers)}
	for _, offer := range offers {
		if err := s.saveOffer(ctx, typeID, offer); err != nil {
			log.Printf("pipeline.Service: saving offer %q: %v", offer.FileName, err)
			outcome.Error = err.Error()
			continue
		}
		outcome.SavedCount++
	}
	outcome.Success = outcome.SavedCount == outcome.RequestedCount

	return &domain.RegistrationOutcome{
		IndividualOffers: offers,
		Persistence:      outcome,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *Service) saveOffer(ctx context.Context, typeID string, offer domain.OfferExtraction) error {
	fieldsJSON, err := json.Marshal(offer.Data)
	if err != nil {
		return fmt.Errorf("encoding offer fields: %w", err)
	}
	return s.offers.Save(ctx, &domain.OfferRecord{
		ID:           uuid.New(),
		DocumentType: typeID,
		FileName:     offer.FileName,
		Fields:       offer.Data,
		FieldsJSON:   fieldsJSON,
		Confidence:   offer.Confidence,
	})
}

// enrichRecord computes derived fields before persistence. Currently the
// fixed-interest tenor in years, from the offer date and the fixed-period
// field.
func enrichRecord(record domain.ParsedRecord) {
	offerDate, _ := record["angebotsdatum"].(string)
	fixedPeriod, _ := record["fixzinsperiode"].(string)
	if tenor := tenorInYears(offerDate, fixedPeriod); tenor != "" {
		record["fixzinssatz_in_jahren"] = tenor
	}
}
