package claude

import (
	"context"
	"fmt"
	"io"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/studio"
)

// Assistant implements studio.Assistant against the Anthropic Messages API.
type Assistant struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAssistant creates the Claude-backed collaborator. Extra client options
// are passed through, which tests use to point at a stub server.
func NewAssistant(apiKey, model string, opts ...anthropic.ClientOption) *Assistant {
	return &Assistant{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

// 1024 tokens comfortably covers a short statement plus three tips, or a few
// paragraphs of location advice.
const maxTokens = 1024

func (a *Assistant) ArtisticStatement(ctx context.Context, image io.Reader, mimeType string) (*studio.Suggestion, error) {
	imageData, err := io.ReadAll(image)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
						anthropic.MessagesContentSourceTypeBase64,
						normaliseMIME(mimeType),
						imageData,
					)),
					anthropic.NewTextMessageContent(studio.StatementPrompt),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	return studio.ParseSuggestion(resp.GetFirstContentText())
}

func (a *Assistant) ShootingAdvice(ctx context.Context, location string) (*studio.Advice, error) {
	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(studio.AdvicePrompt(location)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	text := resp.GetFirstContentText()
	if text == "" {
		text = studio.NoAdviceFound
	}
	return &studio.Advice{Text: text, Sources: []string{}}, nil
}

// normaliseMIME maps browser MIME types to the values the Anthropic API
// accepts. Unknown types are coerced to jpeg as the most universally
// supported lossy fallback.
func normaliseMIME(mimeType string) string {
	switch mimeType {
	case "image/png", "image/gif", "image/webp":
		return mimeType
	default:
		return "image/jpeg"
	}
}
