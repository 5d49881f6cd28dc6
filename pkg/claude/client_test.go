package claude

import (
	"testing"

	"levantd/pkg/domain"
)

func TestCoerceMediaType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"image/png", "image/png"},
		{"image/webp", "image/webp"},
		{" Image/JPEG ", "image/jpeg"},
		{"image/bmp", "image/jpeg"},
		{"", "image/jpeg"},
	}

	for _, test := range tests {
		if got := coerceMediaType(test.in); got != test.want {
			t.Errorf("coerceMediaType(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestBuildParams(t *testing.T) {
	req := domain.ProviderRequest{
		Model:        "claude-3-5-sonnet-20240620",
		SystemPrompt: "be terse",
		Prompt:       "describe the map",
		MediaParts: []domain.MediaPart{
			{Kind: domain.MediaKindImage, MimeType: "image/png", Data: "aW1n"},
			{Kind: domain.MediaKindDocument, MimeType: "application/pdf", Data: "cGRm"},
		},
	}

	params := buildParams(req)

	if string(params.Model) != "claude-3-5-sonnet-20240620" {
		t.Errorf("Model = %q", params.Model)
	}
	if params.MaxTokens != maxTokens {
		t.Errorf("MaxTokens = %d, want %d", params.MaxTokens, maxTokens)
	}
	if len(params.System) != 1 || params.System[0].Text != "be terse" {
		t.Errorf("System = %+v", params.System)
	}
	if len(params.Messages) != 1 {
		t.Fatalf("Messages = %d, want 1", len(params.Messages))
	}

	blocks := params.Messages[0].Content
	if len(blocks) != 2 {
		t.Fatalf("content blocks = %d, want image then text (document dropped)", len(blocks))
	}
	if blocks[0].OfImage == nil {
		t.Errorf("blocks[0] is not an image block: %+v", blocks[0])
	}
	if blocks[1].OfText == nil || blocks[1].OfText.Text != "describe the map" {
		t.Errorf("blocks[1] is not the prompt text block: %+v", blocks[1])
	}
}

func TestBuildParamsDefaults(t *testing.T) {
	params := buildParams(domain.ProviderRequest{Prompt: "hello"})

	if string(params.Model) != defaultModel {
		t.Errorf("Model = %q, want default", params.Model)
	}
	if len(params.System) != 0 {
		t.Errorf("System = %+v, want unset", params.System)
	}
	if len(params.Messages[0].Content) != 1 {
		t.Errorf("content blocks = %d, want text only", len(params.Messages[0].Content))
	}
}
