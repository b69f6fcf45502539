package render

import "strings"

// RenderTXT normalizes generated resume text into a plain-text artifact:
// unix line endings and a single trailing newline.
func RenderTXT(text string) []byte {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.TrimRight(normalized, "\n")
	return []byte(normalized + "\n")
}
