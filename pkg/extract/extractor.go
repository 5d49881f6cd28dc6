package extract

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"levantd/pkg/domain"
)

// maxTextLen caps every extracted text body before it is appended to the
// prompt.
const maxTextLen = 50000

const truncationMarker = "\n...[content truncated]"

// attachmentKind is the closed set of ingestion paths. Each attachment is
// classified exactly once, from its declared MIME type plus filename
// extension, under the active capability profile.
type attachmentKind int

const (
	kindImage attachmentKind = iota
	kindNativeDocument
	kindPDF
	kindWord
	kindPlainText
	kindUnrecognized
)

var dataURIPrefix = regexp.MustCompile(`^data:.*?;base64,`)

// textExts lists extensions treated as readable text regardless of the
// declared MIME type.
var textExts = map[string]bool{
	".txt": true, ".md": true, ".json": true, ".py": true,
	".js": true, ".csv": true, ".xml": true, ".html": true,
	".yaml": true, ".yml": true, ".log": true,
}

// Extract ingests attachments in input order under the given capability
// profile. It never fails: malformed or unreadable attachments degrade to
// warnings and placeholder text, and processing continues with the rest.
func Extract(attachments []domain.Attachment, profile domain.CapabilityProfile) domain.ExtractionResult {
	var result domain.ExtractionResult

	for _, att := range attachments {
		cleaned := dataURIPrefix.ReplaceAllString(att.Data, "")

		raw, err := base64.StdEncoding.DecodeString(cleaned)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("attachment '%s': corrupted base64 payload, skipped", att.Name))
			continue
		}

		switch classifyKind(att, profile) {
		case kindImage:
			if profile.SupportsVision {
				result.MediaParts = append(result.MediaParts, domain.MediaPart{
					Kind:     domain.MediaKindImage,
					MimeType: att.Type,
					Data:     cleaned,
				})
			} else {
				result.AppendedText += fmt.Sprintf(
					"\n[System: User uploaded image '%s', but current model does not support vision. Image ignored.]\n",
					att.Name)
			}

		case kindNativeDocument:
			result.MediaParts = append(result.MediaParts, domain.MediaPart{
				Kind:     domain.MediaKindDocument,
				MimeType: "application/pdf",
				Data:     cleaned,
			})

		case kindPDF:
			body, warnings := extractPDFText(raw)
			for _, w := range warnings {
				result.Warnings = append(result.Warnings, fmt.Sprintf("attachment '%s': %s", att.Name, w))
			}
			result.AppendedText += renderTextBlock(att.Name, "PDF", body)

		case kindWord:
			result.AppendedText += renderTextBlock(att.Name, "DOCX", extractDocxText(raw))

		case kindPlainText, kindUnrecognized:
			body, ok := decodeText(raw)
			if !ok {
				result.AppendedText += fmt.Sprintf(
					"\n[System: File '%s' (%s) skipped: unreadable binary content.]\n",
					att.Name, att.Type)
				continue
			}
			result.AppendedText += renderTextBlock(att.Name, "TEXT", body)
		}
	}

	return result
}

func classifyKind(att domain.Attachment, profile domain.CapabilityProfile) attachmentKind {
	mimeType := strings.ToLower(strings.TrimSpace(att.Type))
	ext := strings.ToLower(filepath.Ext(att.Name))

	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return kindImage
	case mimeType == "application/pdf" || ext == ".pdf":
		if profile.SupportsNativeDocument {
			return kindNativeDocument
		}
		return kindPDF
	case strings.Contains(mimeType, "wordprocessingml") || mimeType == "application/msword" ||
		ext == ".docx" || ext == ".doc":
		return kindWord
	case strings.HasPrefix(mimeType, "text/") || mimeType == "application/json" || textExts[ext]:
		return kindPlainText
	default:
		return kindUnrecognized
	}
}

// renderTextBlock truncates body to maxTextLen characters and frames it
// with a header identifying the source attachment and its origin format.
// The cut is counted in runes, never bytes: CJK bodies keep the full
// character budget and a multi-byte sequence is never split.
func renderTextBlock(name, format, body string) string {
	if utf8.RuneCountInString(body) > maxTextLen {
		runes := []rune(body)
		body = string(runes[:maxTextLen]) + truncationMarker
	}
	return fmt.Sprintf("\n\n=== FILE: %s (%s) ===\n%s\n", name, format, body)
}
