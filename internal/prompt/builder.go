// Package prompt merges document type templates with extracted text.
package prompt

import "strings"

const (
	placeholderText    = "{DOCUMENT_TEXT}"
	placeholderContent = "{DOCUMENT_CONTENT}"
)

// Build substitutes the document text into a template. Templates reference
// the text through {DOCUMENT_TEXT} or {DOCUMENT_CONTENT}; a template with
// neither placeholder gets the text appended under an explicit section so
// extracted content is never silently dropped.
func Build(template, text string) string {
	if strings.Contains(template, placeholderText) || strings.Contains(template, placeholderContent) {
		out := strings.ReplaceAll(template, placeholderText, text)
		return strings.ReplaceAll(out, placeholderContent, text)
	}
	return template + "\n\nDocument Content:\n" + text
}
