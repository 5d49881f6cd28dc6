package domain

// Attachment is a user-supplied file attached to a generation request.
// Data may still carry a "data:<mime>;base64," prefix from the browser.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// GenerateRequest is the logical generation request as received from the
// editor front-end.
type GenerateRequest struct {
	Provider     string       `json:"provider"`
	APIKey       string       `json:"apiKey"`
	BaseURL      string       `json:"baseUrl,omitempty"`
	Model        string       `json:"model"`
	SystemPrompt string       `json:"systemPrompt"`
	Context      string       `json:"context"`
	History      string       `json:"history,omitempty"`
	UserPrompt   string       `json:"userPrompt"`
	UseProxy     bool         `json:"useProxy"`
	ProxyPort    string       `json:"proxyPort"`
	Attachments  []Attachment `json:"attachments"`
}

// Transport returns the per-request transport configuration. Proxy
// settings are scoped to the request, never to process environment.
func (r GenerateRequest) Transport() TransportConfig {
	return TransportConfig{UseProxy: r.UseProxy, ProxyPort: r.ProxyPort}
}

type GenerateResult struct {
	Result string `json:"result"`
}

// TransportConfig describes how the outbound provider call should reach
// the network.
type TransportConfig struct {
	UseProxy  bool
	ProxyPort string
}

// CapabilityProfile records which input media kinds a (provider, model)
// pair accepts. Derived per request, never stored.
type CapabilityProfile struct {
	SupportsVision         bool
	SupportsNativeDocument bool
}

type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindDocument MediaKind = "document"
)

// MediaPart is a unit of non-text content forwarded to a provider
// natively. Constructed only when the capability profile permits it.
type MediaPart struct {
	Kind     MediaKind `json:"kind"`
	MimeType string    `json:"mimeType"`
	Data     string    `json:"data"`
}

// ExtractionResult aggregates what the attachment extractor produced:
// in-order textual renderings, native media parts, and per-attachment
// warnings. A failed attachment contributes a warning, never an error.
type ExtractionResult struct {
	AppendedText string
	MediaParts   []MediaPart
	Warnings     []string
}

// ProviderRequest is the provider-agnostic input to a provider client.
// Prompt already carries context, extracted attachment text, history and
// the instruction; SystemPrompt is placed by each provider family in its
// native position.
type ProviderRequest struct {
	Model        string
	APIKey       string
	BaseURL      string
	SystemPrompt string
	Prompt       string
	MediaParts   []MediaPart
	Transport    TransportConfig
}
