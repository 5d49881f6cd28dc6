package capability

import (
	"strings"

	"levantd/pkg/domain"
)

// visionMarkers are model-name substrings that indicate vision support.
var visionMarkers = []string{"gemini", "claude", "qwen-vl", "llava"}

// Classify derives the capability profile for a (provider, model) pair.
// Pure and total: unknown providers and models classify as unsupported.
func Classify(provider, model string) domain.CapabilityProfile {
	p := strings.ToLower(strings.TrimSpace(provider))
	m := strings.ToLower(strings.TrimSpace(model))

	return domain.CapabilityProfile{
		SupportsVision:         supportsVision(m),
		SupportsNativeDocument: p == "gemini",
	}
}

func supportsVision(m string) bool {
	vision := false
	for _, marker := range visionMarkers {
		if strings.Contains(m, marker) {
			vision = true
			break
		}
	}
	if strings.Contains(m, "gpt-4") && (strings.Contains(m, "vision") || strings.HasSuffix(m, "o")) {
		vision = true
	}
	// The deepseek check intentionally runs after the positive list, so a
	// future "deepseek-vl" still classifies negative. Known heuristic gap.
	if strings.Contains(m, "deepseek") {
		vision = false
	}
	return vision
}
