package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDOCX builds a minimal WordprocessingML package out of generated
// resume text. Each input line becomes a paragraph; the first non-empty line
// is rendered as the name heading.
func RenderDOCX(text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty resume text")
	}

	documentXML, err := buildDocumentXML(text)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	entries := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, entry := range entries {
		w, err := writer.Create(entry.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func buildDocumentXML(text string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var body strings.Builder
	headingDone := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if !headingDone && strings.TrimSpace(trimmed) != "" {
			headingDone = true
			if err := writeParagraph(&body, trimmed, true); err != nil {
				return "", err
			}
			continue
		}
		if err := writeParagraph(&body, trimmed, false); err != nil {
			return "", err
		}
	}

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString("\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	doc.WriteString(body.String())
	doc.WriteString(`<w:sectPr/></w:body></w:document>`)
	return doc.String(), nil
}

func writeParagraph(out *strings.Builder, line string, heading bool) error {
	escaped, err := escapeXMLText(line)
	if err != nil {
		return err
	}

	out.WriteString(`<w:p>`)
	if heading {
		out.WriteString(`<w:pPr><w:spacing w:after="240"/></w:pPr>`)
		out.WriteString(`<w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr>`)
	} else {
		out.WriteString(`<w:r>`)
	}
	if escaped != "" {
		out.WriteString(`<w:t xml:space="preserve">`)
		out.WriteString(escaped)
		out.WriteString(`</w:t>`)
	}
	out.WriteString(`</w:r></w:p>`)
	return nil
}

func escapeXMLText(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
