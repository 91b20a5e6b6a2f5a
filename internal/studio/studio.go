// Package studio is the generative-AI collaborator behind the admin studio:
// artistic statements for uploaded photographs and location shooting advice.
// Callers treat it as opaque; failures degrade, they never block the app.
package studio

import (
	"context"
	"fmt"
	"io"
)

// StatementPrompt asks for the structured artistic statement. The response
// must be a single JSON object so ParseSuggestion can decode it.
const StatementPrompt = `Analyze this photograph and provide:
1. A poetic artistic statement (short story).
2. A catchy title suggestion.
3. Three technical tips to improve or replicate this style.
Respond with a single JSON object with keys "story", "titleSuggestion" and
"technicalTips" (an array of strings). No prose outside the JSON.`

// AdvicePrompt builds the location-advice request.
func AdvicePrompt(location string) string {
	return fmt.Sprintf(
		"Provide expert photography advice for shooting in %s. Include best times of day, potential gear needs, and hidden spots if possible.",
		location)
}

// Fixed user-facing fallback strings. These are shown instead of errors.
const (
	UnavailableAdvice = "AI features are currently unavailable. Check your API configuration."
	NoAdviceFound     = "I couldn't find specific advice for this location at the moment."
	AdviceFailed      = "Error fetching location data. Please try again later."
)

// Suggestion is the structured artistic statement for a photograph.
type Suggestion struct {
	Story           string   `json:"story"`
	TitleSuggestion string   `json:"titleSuggestion"`
	TechnicalTips   []string `json:"technicalTips"`
}

// Advice is the response to a location query.
type Advice struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources"`
}

// Assistant is the collaborator contract. Adapters return errors; the service
// layer decides how to degrade them.
type Assistant interface {
	ArtisticStatement(ctx context.Context, image io.Reader, mimeType string) (*Suggestion, error)
	ShootingAdvice(ctx context.Context, location string) (*Advice, error)
}
