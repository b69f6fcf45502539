package profiles

import "strings"

// placeholderTokens are literal fragments some models echo back when a field
// was optional and absent. They are stripped before rendering.
var placeholderTokens = []string{
	"[Add Email Address]",
	"[Add Phone Number]",
	"[Add LinkedIn Profile URL (optional)]",
	"[Add GitHub URL (optional)]",
}

// CleanGeneratedText removes known placeholder fragments from model output
// and trims surrounding whitespace. Applying it twice yields the same result.
func CleanGeneratedText(text string) string {
	cleaned := text
	for _, token := range placeholderTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	return strings.TrimSpace(cleaned)
}
