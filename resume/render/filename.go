package render

import (
	"strings"
	"time"
	"unicode"
)

const artifactTimeLayout = "20060102_150405"

// ArtifactFileName produces the download name for a rendered resume:
// "<Sanitized_Name>_Resume_<YYYYMMDD_HHMMSS>.<ext>". Characters outside
// letters and digits collapse to single underscores; a name that sanitizes
// to nothing falls back to "Candidate".
func ArtifactFileName(candidateName string, ext string, at time.Time) string {
	base := sanitizeNamePart(candidateName)
	if base == "" {
		base = "Candidate"
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	return base + "_Resume_" + at.Format(artifactTimeLayout) + "." + ext
}

func sanitizeNamePart(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
