package sanitize

import "fmt"

// bulkThreshold is the length above which known media-carrying fields are
// replaced with a size placeholder. Shorter values (URLs, identifiers)
// pass through unchanged.
const bulkThreshold = 200

const credentialKey = "apiKey"

// bulkKeys are field names known to carry bulk base64-encoded media.
var bulkKeys = map[string]bool{
	"data":   true,
	"image":  true,
	"images": true,
	"mask":   true,
	"logo":   true,
	"icon":   true,
}

// Sanitize returns a redacted copy of a JSON-like value, safe for durable
// logging. Shape and ordering are preserved; only credential and bulk
// media fields are rewritten.
func Sanitize(value any) any {
	return sanitizeValue("", value)
}

func sanitizeValue(key string, value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = sanitizeValue(k, item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(key, item)
		}
		return out
	case string:
		return sanitizeString(key, v)
	default:
		return value
	}
}

func sanitizeString(key, value string) string {
	if key == credentialKey {
		if value == "" {
			return "<unset>"
		}
		if len(value) <= 4 {
			return "***"
		}
		return "***" + value[len(value)-4:]
	}
	if bulkKeys[key] && len(value) > bulkThreshold {
		return fmt.Sprintf("<base64 omitted, size=%d>", len(value))
	}
	return value
}
