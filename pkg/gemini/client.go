package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"levantd/pkg/domain"
	"levantd/pkg/transport"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

const defaultModel = "gemini-2.5-flash"

// Client talks to the Gemini generateContent REST endpoint. Gemini is the
// only family that accepts PDF documents as native media parts.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GenerateContent(ctx context.Context, req domain.ProviderRequest) (string, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	model := req.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimSuffix(req.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, model, req.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := transport.NewHTTPClient(req.Transport).Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("executing HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(bodyBytes))
	}

	return processResponse(resp.Body)
}

// buildRequest assembles the flat parts list: one combined text block
// followed by inline entries for images and native PDF documents.
func buildRequest(req domain.ProviderRequest) *generateContentRequest {
	text := req.Prompt
	if req.SystemPrompt != "" {
		text = req.SystemPrompt + "\n\n" + req.Prompt
	}

	parts := []part{{Text: text}}
	for _, m := range req.MediaParts {
		parts = append(parts, part{
			InlineData: &inlineData{MimeType: m.MimeType, Data: m.Data},
		})
	}

	return &generateContentRequest{
		Contents: []content{{Parts: parts}},
	}
}

func processResponse(r io.Reader) (string, error) {
	var response generateContentResponse
	if err := json.NewDecoder(r).Decode(&response); err != nil {
		return "", fmt.Errorf("decoding response data: %w", err)
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates (possible safety block)", domain.ErrEmptyCompletion)
	}

	parts := response.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", domain.ErrEmptyCompletion
	}
	return parts[0].Text, nil
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}
