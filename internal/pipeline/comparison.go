package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finodex/internal/domain"
	"finodex/internal/parse"
	"finodex/internal/port"
	"finodex/internal/prompt"
	"finodex/internal/registry"
)

// ProcessComparison extracts every offer in input order and asks the model
// to rank them parameter by parameter. The mode is fail-fast: the first
// per-file failure aborts the whole batch with that file's error, and no
// partial comparison is returned.
func (s *Service) ProcessComparison(ctx context.Context, files []FileInput, typeID string) (*domain.ComparisonOutcome, error) {
	start := time.Now()

	if err := s.checkFileCount(typeID, len(files), 2); err != nil {
		return nil, err
	}

	// Sequential, in input order: the combined representation and the
	// offer indices the model sees are positional.
	offers := make([]domain.OfferExtraction, 0, len(files))
	for _, file := range files {
		record, confidence, err := s.extractRecord(ctx, file, typeID)
		if err != nil {
			return nil, fmt.Errorf("offer %q: %w", file.FileName, err)
		}
		offers = append(offers, domain.OfferExtraction{
			FileName:   file.FileName,
			Data:       record,
			Confidence: confidence,
		})
	}

	comparison, err := s.compareOffers(ctx, offers, typeID)
	if err != nil {
		return nil, err
	}

	return &domain.ComparisonOutcome{
		IndividualOffers: offers,
		Comparison:       comparison,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// compareOffers builds the combined textual representation of all records
// and runs it through the same prompt/gateway/parse pipeline against the
// comparison template.
func (s *Service) compareOffers(ctx context.Context, offers []domain.OfferExtraction, typeID string) (*domain.ComparisonResult, error) {
	template, err := s.registry.Template(registry.TemplateComparison)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, offer := range offers {
		encoded, err := json.Marshal(offer.Data)
		if err != nil {
			return nil, fmt.Errorf("encoding offer %q: %w", offer.FileName, err)
		}
		fmt.Fprintf(&b, "Offer %d (%s): %s\n", i+1, offer.FileName, encoded)
	}

	reply, err := s.gateway.Process(ctx, port.GatewayRequest{
		Prompt:         prompt.Build(template, b.String()),
		DocumentTypeID: typeID,
	})
	if err != nil {
		return nil, err
	}

	record, err := parse.Record(reply)
	if err != nil {
		return nil, err
	}

	result := &domain.ComparisonResult{
		Parameters: stringSlice(record["parameters"]),
		Offers:     make(map[string]domain.ParsedRecord, len(offers)),
		BestOffers: bestOffers(record["best_offers"]),
	}
	for _, offer := range offers {
		result.Offers[offer.FileName] = offer.Data
	}
	return result, nil
}

// stringSlice coerces a parsed JSON array into strings, dropping anything
// that is not one.
func stringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// bestOffers decodes the model's ranking list. Entries without a
// parameter name are dropped; everything else is taken as-is.
func bestOffers(v interface{}) []domain.BestOffer {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]domain.BestOffer, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		parameter, _ := m["parameter"].(string)
		if parameter == "" {
			continue
		}
		offerID, _ := m["offer_id"].(string)
		reason, _ := m["reason"].(string)
		out = append(out, domain.BestOffer{
			Parameter: parameter,
			OfferID:   offerID,
			Value:     m["value"],
			Reason:    reason,
		})
	}
	return out
}
