package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

const unreadablePDF = "[Unreadable PDF]"

var pdfMagic = []byte("%PDF")

// extractPDFText concatenates the plain text of every readable page.
// Encrypted documents are retried with an empty password. Unreadable
// content degrades to a placeholder body, never an error: the underlying
// parser is known to panic on exotic inputs, hence the recover.
func extractPDFText(data []byte) (body string, warnings []string) {
	defer func() {
		if r := recover(); r != nil {
			body = unreadablePDF
		}
	}()

	if !bytes.HasPrefix(data, pdfMagic) {
		warnings = append(warnings, "missing %PDF header, attempting extraction anyway")
	}

	reader, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string { return "" })
	if err != nil {
		return unreadablePDF, warnings
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return unreadablePDF, warnings
	}
	return sb.String(), warnings
}
