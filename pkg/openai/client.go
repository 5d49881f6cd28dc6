package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"levantd/pkg/domain"
	"levantd/pkg/transport"
)

// Client talks to any OpenAI-compatible chat-completions endpoint:
// OpenAI itself, DeepSeek, Qwen, or a local/custom BaseURL.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GenerateContent(ctx context.Context, req domain.ProviderRequest) (string, error) {
	cfg := openai.DefaultConfig(req.APIKey)
	cfg.HTTPClient = transport.NewHTTPClient(req.Transport)
	if baseURL := strings.TrimSuffix(req.BaseURL, "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    buildMessages(req),
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// buildMessages keeps the user message a bare string when no media parts
// exist: several compatible endpoints reject structured content for
// text-only exchanges.
func buildMessages(req domain.ProviderRequest) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
	}

	if len(req.MediaParts) == 0 {
		return append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.Prompt,
		})
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
	}
	for _, m := range req.MediaParts {
		if m.Kind != domain.MediaKindImage {
			continue
		}
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", m.MimeType, m.Data),
			},
		})
	}

	return append(messages, openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	})
}
