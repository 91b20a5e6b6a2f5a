package studio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSuggestion decodes a model response into a Suggestion. Models tend to
// wrap JSON in markdown fences or preamble, so everything outside the
// outermost braces is discarded.
func ParseSuggestion(raw string) (*Suggestion, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	s := &Suggestion{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), s); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion: %w", err)
	}

	if s.Story == "" && s.TitleSuggestion == "" {
		return nil, fmt.Errorf("suggestion missing story and title")
	}
	return s, nil
}
