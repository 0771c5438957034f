package registry

import (
	"encoding/json"
	"log"
	"os"

	"finodex/internal/domain"
)

// ChecklistStore holds the verification checklists, keyed by document
// type. Like the Registry it is read-only after startup.
type ChecklistStore struct {
	lists map[string]domain.VerificationChecklist
}

// NewChecklistStore builds a store from explicit checklists.
func NewChecklistStore(lists []domain.VerificationChecklist) *ChecklistStore {
	s := &ChecklistStore{lists: make(map[string]domain.VerificationChecklist, len(lists))}
	for _, l := range lists {
		s.lists[l.ID] = l
	}
	return s
}

// DefaultChecklists returns a store with the built-in checklists.
func DefaultChecklists() *ChecklistStore {
	return NewChecklistStore(defaultChecklists())
}

// LoadChecklists reads checklists from a JSON file, falling back to the
// built-in set when the file is missing or malformed.
func LoadChecklists(path string) *ChecklistStore {
	if path == "" {
		return DefaultChecklists()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("registry.LoadChecklists: reading %s failed (%v), using built-in checklists", path, err)
		return DefaultChecklists()
	}
	var lists []domain.VerificationChecklist
	if err := json.Unmarshal(data, &lists); err != nil {
		log.Printf("registry.LoadChecklists: parsing %s failed (%v), using built-in checklists", path, err)
		return DefaultChecklists()
	}
	if len(lists) == 0 {
		log.Printf("registry.LoadChecklists: %s contains no checklists, using built-in set", path)
		return DefaultChecklists()
	}
	return NewChecklistStore(lists)
}

// Get returns the checklist for a document type.
func (s *ChecklistStore) Get(id string) (*domain.VerificationChecklist, bool) {
	l, ok := s.lists[id]
	if !ok {
		return nil, false
	}
	return &l, true
}
