// Package score computes completeness-based confidence for extraction
// results.
package score

import "finodex/internal/domain"

// neutralScore is returned for document types that declare no required
// fields: with nothing to measure completeness against, the score is a
// fixed midpoint rather than a guess in either direction.
const neutralScore = 0.5

// Confidence scores a parsed record against a document type's required
// field set. Each populated (present, non-null) required field counts one
// point; every field outside the required set adds a 0.5 bonus, capped at
// half the required count. The total normalizes by the required count and
// clamps to [0, 1]. The function is total: it never fails, whatever the
// record or definition looks like.
func Confidence(record domain.ParsedRecord, def *domain.DocumentTypeDefinition) float64 {
	if def == nil || len(def.RequiredFields) == 0 {
		return neutralScore
	}

	required := make(map[string]bool, len(def.RequiredFields))
	for _, f := range def.RequiredFields {
		required[f] = true
	}

	var present, extras int
	for _, f := range def.RequiredFields {
		if v, ok := record[f]; ok && v != nil {
			present++
		}
	}
	for k, v := range record {
		if !required[k] && v != nil {
			extras++
		}
	}

	requiredCount := float64(len(def.RequiredFields))
	bonus := 0.5 * float64(extras)
	if maxBonus := 0.5 * requiredCount; bonus > maxBonus {
		bonus = maxBonus
	}

	confidence := (float64(present) + bonus) / requiredCount
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
