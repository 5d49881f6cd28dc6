package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"levantd/pkg/domain"
	"levantd/pkg/transport"
)

const defaultModel = "claude-3-5-sonnet-20240620"

const maxTokens = 4096

// imageMediaTypes is the whitelist of image media types the Messages API
// accepts for base64 sources.
var imageMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Client talks to the Anthropic Messages API. Documents are always
// pre-extracted to text upstream; only image parts reach this client.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GenerateContent(ctx context.Context, req domain.ProviderRequest) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(req.APIKey),
		option.WithHTTPClient(transport.NewHTTPClient(req.Transport)),
	}
	if baseURL := strings.TrimSuffix(req.BaseURL, "/"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)

	resp, err := client.Messages.New(ctx, buildParams(req))
	if err != nil {
		return "", fmt.Errorf("claude API call: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.AsText().Text
		}
	}
	if content == "" {
		return "", domain.ErrEmptyCompletion
	}
	return content, nil
}

// buildParams packs image blocks first, then one text block, mirroring
// the order the editor has always sent.
func buildParams(req domain.ProviderRequest) anthropic.MessageNewParams {
	var blocks []anthropic.ContentBlockParamUnion
	for _, m := range req.MediaParts {
		if m.Kind != domain.MediaKindImage {
			continue
		}
		blocks = append(blocks, anthropic.NewImageBlockBase64(coerceMediaType(m.MimeType), m.Data))
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	model := req.Model
	if model == "" {
		model = defaultModel
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	return params
}

func coerceMediaType(mimeType string) string {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if imageMediaTypes[m] {
		return m
	}
	return "image/jpeg"
}
