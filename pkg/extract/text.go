package extract

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// decodeText decodes raw bytes as UTF-8, falling back to GBK for saves
// and notes produced by legacy Chinese-locale tooling. Reports false when
// the content is not text under either encoding. The decoder substitutes
// U+FFFD for invalid input rather than failing, so a replacement rune in
// the output means the bytes were not GBK.
func decodeText(data []byte) (string, bool) {
	if utf8.Valid(data) {
		return string(data), true
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), true
	}
	return "", false
}
