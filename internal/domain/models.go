package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentTypeDefinition describes one class of document the pipeline can
// process. Definitions are loaded once at startup and never mutated while
// requests are in flight.
type DocumentTypeDefinition struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSize      int64    `json:"max_file_size"`
	PromptTemplate   string   `json:"prompt_template"`
	RequiredFields   []string `json:"required_fields"`
	MinFiles         int      `json:"min_files,omitempty"`
	MaxFiles         int      `json:"max_files,omitempty"`
}

// MultiFile reports whether the type accepts more than one file per request.
func (d *DocumentTypeDefinition) MultiFile() bool {
	return d.MaxFiles > 1
}

// ExtractionJob is the per-file unit of work handed to the pipeline. It is
// created when a request arrives and discarded when the pipeline finishes.
type ExtractionJob struct {
	DocumentTypeID string
	FileName       string
	Data           []byte
}

// ExtractedText is the plain-text output of the extractor, tagged with the
// source format it came from. Text is never empty on success.
type ExtractedText struct {
	Text     string
	Format   FileFormat
	Warnings []string
}

// ParsedRecord is the validated mapping produced from a model reply. The
// top-level JSON value is always an object.
type ParsedRecord map[string]interface{}

// SingleResult is the outcome of processing one document end to end.
type SingleResult struct {
	ExtractedData    ParsedRecord `json:"extracted_data"`
	Confidence       float64      `json:"confidence"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
}

// OfferExtraction is one offer's record inside a multi-document request,
// tagged with the file it came from.
type OfferExtraction struct {
	FileName   string       `json:"file_name"`
	Data       ParsedRecord `json:"data"`
	Confidence float64      `json:"confidence"`
}

// BestOffer names the winning offer for a single compared parameter.
type BestOffer struct {
	Parameter string      `json:"parameter"`
	OfferID   string      `json:"offer_id"`
	Value     interface{} `json:"value"`
	Reason    string      `json:"reason,omitempty"`
}

// ComparisonResult ranks a set of offers per parameter.
type ComparisonResult struct {
	Parameters []string                `json:"parameters"`
	Offers     map[string]ParsedRecord `json:"offers"`
	BestOffers []BestOffer             `json:"best_offers"`
}

// ComparisonOutcome is the full reply for a comparison request.
type ComparisonOutcome struct {
	IndividualOffers []OfferExtraction `json:"individual_offers"`
	Comparison       *ComparisonResult `json:"comparison"`
	ProcessingTimeMs int64             `json:"processing_time_ms"`
}

// PersistenceOutcome reports partial success of a registration batch.
type PersistenceOutcome struct {
	Success        bool   `json:"success"`
	SavedCount     int    `json:"saved_count"`
	RequestedCount int    `json:"requested_count"`
	Error          string `json:"error,omitempty"`
}

// RegistrationOutcome is the full reply for a registration request.
type RegistrationOutcome struct {
	IndividualOffers []OfferExtraction  `json:"individual_offers"`
	Persistence      PersistenceOutcome `json:"persistence"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

// OfferRecord is the persisted form of one registered offer.
type OfferRecord struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	DocumentType string       `db:"document_type" json:"document_type"`
	FileName     string       `db:"file_name" json:"file_name"`
	Fields       ParsedRecord `db:"-" json:"fields"`
	FieldsJSON   []byte       `db:"fields" json:"-"`
	Confidence   float64      `db:"confidence" json:"confidence"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// ChecklistItem is one boolean criterion inside a verification checklist.
type ChecklistItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// VerificationChecklist is an ordered list of criteria for one document type.
type VerificationChecklist struct {
	ID    string          `json:"id"`
	Items []ChecklistItem `json:"items"`
}

// VerificationItemResult is the pass/fail outcome for one checklist item.
type VerificationItemResult struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// VerificationResult is the verdict for one document against its checklist.
type VerificationResult struct {
	DocumentType     string                   `json:"document_type"`
	FileName         string                   `json:"file_name"`
	Verified         bool                     `json:"verified"`
	Items            []VerificationItemResult `json:"items"`
	PassedCount      int                      `json:"passed_count"`
	TotalCount       int                      `json:"total_count"`
	ProcessingTimeMs int64                    `json:"processing_time_ms"`
	Confidence       *float64                 `json:"confidence,omitempty"`
}

// VerificationOutcome is the full reply for a verification batch.
type VerificationOutcome struct {
	Documents             []VerificationResult `json:"documents"`
	OverallVerified       bool                 `json:"overall_verified"`
	TotalProcessingTimeMs int64                `json:"total_processing_time_ms"`
}
