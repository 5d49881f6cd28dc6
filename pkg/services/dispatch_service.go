package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"levantd/pkg/capability"
	"levantd/pkg/domain"
	"levantd/pkg/extract"
	"levantd/pkg/sanitize"
)

// ProviderClient executes one generation call against an external
// provider family.
type ProviderClient interface {
	GenerateContent(ctx context.Context, req domain.ProviderRequest) (string, error)
}

type dispatchService struct {
	gemini ProviderClient
	claude ProviderClient
	openAI ProviderClient
}

func NewDispatchService(gemini, claude, openAI ProviderClient) *dispatchService {
	return &dispatchService{
		gemini: gemini,
		claude: claude,
		openAI: openAI,
	}
}

// Dispatch runs the full pipeline: capability classification, attachment
// extraction, payload assembly, the provider call. The request and result
// are logged in sanitized form around the call. No retries: a provider
// failure surfaces once as a terminal error.
func (s *dispatchService) Dispatch(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResult, error) {
	if req.APIKey == "" {
		return domain.GenerateResult{}, domain.ErrMissingAPIKey
	}

	profile := capability.Classify(req.Provider, req.Model)

	extraction := extract.Extract(req.Attachments, profile)
	for _, warning := range extraction.Warnings {
		slog.WarnContext(ctx, "Attachment degraded during extraction", "warning", warning)
	}

	providerReq := domain.ProviderRequest{
		Model:        req.Model,
		APIKey:       req.APIKey,
		BaseURL:      req.BaseURL,
		SystemPrompt: req.SystemPrompt,
		Prompt:       buildPrompt(req, extraction),
		MediaParts:   extraction.MediaParts,
		Transport:    req.Transport(),
	}

	logSanitized(ctx, "Dispatching generation request", req)

	result, err := s.clientFor(req.Provider).GenerateContent(ctx, providerReq)
	if err != nil {
		return domain.GenerateResult{}, fmt.Errorf("provider %q: %w", req.Provider, err)
	}

	logSanitized(ctx, "Generation request completed", domain.GenerateResult{Result: result})

	return domain.GenerateResult{Result: result}, nil
}

func (s *dispatchService) clientFor(provider string) ProviderClient {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gemini":
		return s.gemini
	case "claude":
		return s.claude
	default:
		return s.openAI
	}
}

// buildPrompt concatenates, in fixed order: context, extracted attachment
// text, history when present, and the instruction. The system prompt is
// placed by each provider family in its native position.
func buildPrompt(req domain.GenerateRequest, extraction domain.ExtractionResult) string {
	var sb strings.Builder
	sb.WriteString("=== CONTEXT ===\n")
	sb.WriteString(req.Context)
	sb.WriteString("\n")
	sb.WriteString(extraction.AppendedText)
	if req.History != "" {
		sb.WriteString("\n=== HISTORY ===\n")
		sb.WriteString(req.History)
		sb.WriteString("\n")
	}
	sb.WriteString("\n=== INSTRUCTION ===\n")
	sb.WriteString(req.UserPrompt)
	return sb.String()
}

// logSanitized logs a JSON rendering of v with credentials and bulk
// base64 payloads redacted.
func logSanitized(ctx context.Context, msg string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return
	}
	clean, err := json.Marshal(sanitize.Sanitize(tree))
	if err != nil {
		return
	}
	slog.DebugContext(ctx, msg, "payload", string(clean))
}
