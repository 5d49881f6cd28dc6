package extract

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
)

const unreadableDOCX = "[Unreadable DOCX]"

// extractDocxText concatenates the paragraph text of a Word document.
// Unreadable content degrades to a placeholder body.
func extractDocxText(data []byte) (body string) {
	defer func() {
		if r := recover(); r != nil {
			body = unreadableDOCX
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return unreadableDOCX
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		paragraph, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := paragraph.String(); strings.TrimSpace(text) != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return unreadableDOCX
	}
	return sb.String()
}
