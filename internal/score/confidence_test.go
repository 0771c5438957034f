package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finodex/internal/domain"
)

func kreditDef() *domain.DocumentTypeDefinition {
	return &domain.DocumentTypeDefinition{
		ID:             "kreditangebot",
		RequiredFields: []string{"kreditbetrag", "zinssatz", "laufzeit", "angebotsdatum"},
	}
}

func TestConfidenceAllRequiredPresent(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag":  250000.0,
		"zinssatz":      3.2,
		"laufzeit":      "25 Jahre",
		"angebotsdatum": "2026-05-01",
	}
	assert.InDelta(t, 1.0, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceThreeOfFourRequired(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag": 250000.0,
		"zinssatz":     3.2,
		"laufzeit":     "25 Jahre",
	}
	assert.InDelta(t, 0.75, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceNullRequiredFieldNotCounted(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag": 250000.0,
		"zinssatz":     nil,
	}
	assert.InDelta(t, 0.25, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceExtrasBonus(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag": 250000.0,
		"zinssatz":     3.2,
		"bank":         "Musterbank",
	}
	// 2 required present + 0.5 extra bonus over 4 required.
	assert.InDelta(t, 0.625, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceExtrasBonusCapped(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag": 250000.0,
		"a":            1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6,
	}
	// Bonus caps at half the required count: (1 + 2) / 4.
	assert.InDelta(t, 0.75, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceClampedToOne(t *testing.T) {
	record := domain.ParsedRecord{
		"kreditbetrag":  250000.0,
		"zinssatz":      3.2,
		"laufzeit":      "25 Jahre",
		"angebotsdatum": "2026-05-01",
		"bank":          "Musterbank",
		"effektivzins":  3.4,
	}
	assert.InDelta(t, 1.0, Confidence(record, kreditDef()), 1e-9)
}

func TestConfidenceEmptyRecord(t *testing.T) {
	assert.InDelta(t, 0.0, Confidence(domain.ParsedRecord{}, kreditDef()), 1e-9)
}

func TestConfidenceNeutralWithoutRequiredFields(t *testing.T) {
	record := domain.ParsedRecord{"anything": 1}
	assert.InDelta(t, 0.5, Confidence(record, &domain.DocumentTypeDefinition{ID: "x"}), 1e-9)
	assert.InDelta(t, 0.5, Confidence(record, nil), 1e-9)
}
