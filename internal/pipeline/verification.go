package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finodex/internal/domain"
	"finodex/internal/parse"
	"finodex/internal/port"
	"finodex/internal/prompt"
	"finodex/internal/registry"
)

const itemNotFoundReason = "item not found in verification response"

// Verify checks each document against its type's checklist. Unlike the
// other aggregation modes this one is not fail-fast: a pipeline failure
// for one document is contained as an all-items-failed result and the
// batch carries on, so degraded results never block reporting on the
// rest.
func (s *Service) Verify(ctx context.Context, files []FileInput, typeIDs []string) (*domain.VerificationOutcome, error) {
	start := time.Now()

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to verify", domain.ErrValidation)
	}
	if len(files) != len(typeIDs) {
		return nil, fmt.Errorf("%w: %d files but %d document types", domain.ErrValidation, len(files), len(typeIDs))
	}

	outcome := &domain.VerificationOutcome{OverallVerified: true}
	for i, file := range files {
		result := s.verifyOne(ctx, file, typeIDs[i])
		if !result.Verified {
			outcome.OverallVerified = false
		}
		outcome.Documents = append(outcome.Documents, result)
	}
	outcome.TotalProcessingTimeMs = time.Since(start).Milliseconds()
	return outcome, nil
}

// verifyOne runs a single document against its checklist, synthesizing a
// failed result instead of returning an error.
func (s *Service) verifyOne(ctx context.Context, file FileInput, typeID string) domain.VerificationResult {
	start := time.Now()
	result := domain.VerificationResult{
		DocumentType: typeID,
		FileName:     file.FileName,
	}

	checklist, ok := s.checklists.Get(typeID)
	if !ok {
		reason := fmt.Sprintf("%v: %q", domain.ErrChecklistNotFound, typeID)
		return failedResult(result, nil, reason, start)
	}

	record, err := s.verificationRecord(ctx, file, typeID, checklist)
	if err != nil {
		return failedResult(result, checklist, err.Error(), start)
	}

	verification, _ := record["verification"].(map[string]interface{})
	for _, item := range checklist.Items {
		entry := lookupItem(verification, item.ID)
		result.Items = append(result.Items, entry.toResult(item))
		if entry.passed {
			result.PassedCount++
		}
	}
	result.TotalCount = len(checklist.Items)
	result.Verified = result.TotalCount > 0 && result.PassedCount == result.TotalCount
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}

// verificationRecord runs the shared extraction pipeline against the
// verification template with the checklist items substituted in.
func (s *Service) verificationRecord(ctx context.Context, file FileInput, typeID string, checklist *domain.VerificationChecklist) (domain.ParsedRecord, error) {
	if err := s.registry.ValidateFile(file.FileName, int64(len(file.Data)), typeID); err != nil {
		return nil, err
	}

	template, err := s.registry.Template(registry.TemplateVerification)
	if err != nil {
		return nil, err
	}
	template = strings.ReplaceAll(template, "{CHECKLIST_ITEMS}", checklistItemsText(checklist))

	extracted, err := s.extractor.Extract(ctx, file.Data, formatOf(file.FileName))
	if err != nil {
		return nil, err
	}

	reply, err := s.gateway.Process(ctx, port.GatewayRequest{
		Prompt:         prompt.Build(template, extracted.Text),
		DocumentTypeID: typeID,
	})
	if err != nil {
		return nil, err
	}

	return parse.Record(reply)
}

func checklistItemsText(checklist *domain.VerificationChecklist) string {
	var b strings.Builder
	for _, item := range checklist.Items {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", item.ID, item.Label, item.Description)
	}
	return b.String()
}

type itemEntry struct {
	passed bool
	reason string
}

func (e itemEntry) toResult(item domain.ChecklistItem) domain.VerificationItemResult {
	return domain.VerificationItemResult{
		ID:     item.ID,
		Label:  item.Label,
		Passed: e.passed,
		Reason: e.reason,
	}
}

// lookupItem finds a checklist item in the model's verification object. A
// checklist item the model did not mention is never silently dropped; it
// fails with an explicit reason.
func lookupItem(verification map[string]interface{}, id string) itemEntry {
	raw, ok := verification[id]
	if !ok {
		return itemEntry{passed: false, reason: itemNotFoundReason}
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return itemEntry{passed: false, reason: itemNotFoundReason}
	}
	passed, _ := m["passed"].(bool)
	reason, _ := m["reason"].(string)
	return itemEntry{passed: passed, reason: reason}
}

// failedResult synthesizes an all-items-failed verdict carrying the
// failure reason on every item.
func failedResult(result domain.VerificationResult, checklist *domain.VerificationChecklist, reason string, start time.Time) domain.VerificationResult {
	result.Verified = false
	result.PassedCount = 0
	if checklist != nil {
		for _, item := range checklist.Items {
			result.Items = append(result.Items, domain.VerificationItemResult{
				ID:     item.ID,
				Label:  item.Label,
				Passed: false,
				Reason: reason,
			})
		}
		result.TotalCount = len(checklist.Items)
	}
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
