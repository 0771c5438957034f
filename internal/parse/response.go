// Package parse turns raw model replies into validated records.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"finodex/internal/domain"
)

// Record parses a raw model reply into a ParsedRecord. The reply is
// untrusted: models wrap JSON in markdown fences and surround it with
// prose. Recovery runs in a fixed order — trim, strip fences, slice to
// the outermost brace span, then parse — so legitimate nested JSON is
// never over-truncated. The top-level value must be a JSON object.
func Record(reply string) (domain.ParsedRecord, error) {
	cleaned := Clean(reply)

	var record domain.ParsedRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponseFormat, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: top-level value is null", domain.ErrInvalidResponseFormat)
	}
	return record, nil
}

// Clean strips formatting noise from a model reply without parsing it:
// surrounding whitespace, a leading ``` or ```json fence with its closing
// fence, and any prose before the first '{' or after the last '}'.
func Clean(reply string) string {
	s := strings.TrimSpace(reply)

	// Fence strip must happen before the brace slice: a fence tag like
	// ```json contains no braces but would otherwise survive into the
	// sliced span when the fence is the only content.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
