package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"finodex/internal/domain"
)

// Registry holds the document type definitions and their prompt templates.
// It is built once at startup and read-only afterwards, so concurrent
// requests may use it without locking.
type Registry struct {
	types     map[string]domain.DocumentTypeDefinition
	order     []string
	templates map[string]string
}

// New builds a Registry from explicit definitions and templates. Intended
// for tests; production code goes through Load or Default.
func New(types []domain.DocumentTypeDefinition, templates map[string]string) *Registry {
	r := &Registry{
		types:     make(map[string]domain.DocumentTypeDefinition, len(types)),
		templates: templates,
	}
	for _, t := range types {
		r.types[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// Default returns a Registry with the built-in document type set.
func Default() *Registry {
	return New(defaultDocumentTypes(), defaultTemplates())
}

// Load reads document type definitions from a JSON file. A missing or
// unreadable file falls back to the built-in defaults rather than failing
// startup; templates are always the compiled-in set, referenced by name.
func Load(path string) *Registry {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("registry.Load: reading %s failed (%v), using built-in document types", path, err)
		return Default()
	}
	var types []domain.DocumentTypeDefinition
	if err := json.Unmarshal(data, &types); err != nil {
		log.Printf("registry.Load: parsing %s failed (%v), using built-in document types", path, err)
		return Default()
	}
	if len(types) == 0 {
		log.Printf("registry.Load: %s contains no document types, using built-in set", path)
		return Default()
	}
	return New(types, defaultTemplates())
}

// Get returns the definition for a document type id.
func (r *Registry) Get(id string) (*domain.DocumentTypeDefinition, bool) {
	t, ok := r.types[id]
	if !ok {
		return nil, false
	}
	return &t, true
}

// List returns all definitions in registration order.
func (r *Registry) List() []domain.DocumentTypeDefinition {
	out := make([]domain.DocumentTypeDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.types[id])
	}
	return out
}

// ValidateFile checks a declared file against a document type. Checks run
// in a fixed order so error messages stay deterministic: type existence,
// then size, then extension.
func (r *Registry) ValidateFile(fileName string, size int64, typeID string) error {
	def, ok := r.Get(typeID)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrDocumentTypeNotFound, typeID)
	}
	if size > def.MaxFileSize {
		return fmt.Errorf("%w: maximum for %s is %d MB", domain.ErrFileTooLarge, def.ID, def.MaxFileSize>>20)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, f := range def.SupportedFormats {
		if ext == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not one of [%s]", domain.ErrUnsupportedFormat, ext, strings.Join(def.SupportedFormats, ", "))
}

// PromptTemplate resolves the extraction template declared by a document
// type. A dangling template reference is a build configuration error, not
// something to paper over with a guess.
func (r *Registry) PromptTemplate(typeID string) (string, error) {
	def, ok := r.Get(typeID)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrDocumentTypeNotFound, typeID)
	}
	tpl, ok := r.templates[def.PromptTemplate]
	if !ok || tpl == "" {
		return "", fmt.Errorf("%w: template %q declared by type %q", domain.ErrPromptNotFound, def.PromptTemplate, typeID)
	}
	return tpl, nil
}

// Template resolves a template by name directly (comparison, verification).
func (r *Registry) Template(name string) (string, error) {
	tpl, ok := r.templates[name]
	if !ok || tpl == "" {
		return "", fmt.Errorf("%w: template %q", domain.ErrPromptNotFound, name)
	}
	return tpl, nil
}
