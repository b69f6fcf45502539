package render

import (
	"bytes"
	"errors"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays out generated resume text as an A4 PDF using
// github.com/go-pdf/fpdf. The first non-empty line is the name heading.
// Characters outside cp1252 are transliterated best-effort by the font
// translator.
func RenderPDF(text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty resume text")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(true, 18)
	doc.AddPage()

	translate := doc.UnicodeTranslatorFromDescriptor("")

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	headingDone := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if !headingDone && strings.TrimSpace(trimmed) != "" {
			headingDone = true
			doc.SetFont("Helvetica", "B", 16)
			doc.MultiCell(0, 8, translate(trimmed), "", "L", false)
			doc.Ln(2)
			doc.SetFont("Helvetica", "", 11)
			continue
		}
		if !headingDone {
			continue
		}
		if strings.TrimSpace(trimmed) == "" {
			doc.Ln(4)
			continue
		}
		doc.MultiCell(0, 5.5, translate(trimmed), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
