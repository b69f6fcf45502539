package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

const sampleResume = "Jane Doe\n\nProfessional Summary\nSeasoned backend engineer.\n\nSkills\n- Go\n- PostgreSQL"

func TestRenderTXT(t *testing.T) {
	out := RenderTXT("Jane Doe\r\nEngineer\r\n")
	want := "Jane Doe\nEngineer\n"
	if string(out) != want {
		t.Fatalf("RenderTXT = %q, want %q", out, want)
	}

	if got := RenderTXT("no trailing newline"); string(got) != "no trailing newline\n" {
		t.Fatalf("RenderTXT = %q", got)
	}
}

func TestRenderDOCX(t *testing.T) {
	out, err := RenderDOCX(sampleResume)
	if err != nil {
		t.Fatalf("RenderDOCX: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("open docx zip: %v", err)
	}

	var documentXML string
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			raw, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatalf("read document.xml: %v", err)
			}
			documentXML = string(raw)
		}
	}

	for _, want := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !names[want] {
			t.Errorf("docx package missing %s", want)
		}
	}
	if !strings.Contains(documentXML, "Jane Doe") {
		t.Error("document.xml missing candidate name")
	}
	if !strings.Contains(documentXML, "<w:b/>") {
		t.Error("heading run is not bold")
	}
	if !strings.Contains(documentXML, "Seasoned backend engineer.") {
		t.Error("document.xml missing body text")
	}
}

func TestRenderDOCXEscapesMarkup(t *testing.T) {
	out, err := RenderDOCX("Jane <Doe> & Co.\nEngineer")
	if err != nil {
		t.Fatalf("RenderDOCX: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("open docx zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		if strings.Contains(string(raw), "<Doe>") {
			t.Error("markup was not escaped")
		}
		if !strings.Contains(string(raw), "&lt;Doe&gt; &amp; Co.") {
			t.Error("escaped text not found")
		}
	}
}

func TestRenderDOCXRejectsEmptyText(t *testing.T) {
	if _, err := RenderDOCX("   \n  "); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleResume)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF header: %q", out[:min(len(out), 8)])
	}
}

func TestRenderPDFRejectsEmptyText(t *testing.T) {
	if _, err := RenderPDF(""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestArtifactFileName(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	cases := []struct {
		name string
		ext  string
		want string
	}{
		{"Jane Doe", "pdf", "Jane_Doe_Resume_20250314_092653.pdf"},
		{"  Jörg  Müller ", ".docx", "Jörg_Müller_Resume_20250314_092653.docx"},
		{"A/B..C", "txt", "A_B_C_Resume_20250314_092653.txt"},
		{"!!!", "txt", "Candidate_Resume_20250314_092653.txt"},
		{"", "pdf", "Candidate_Resume_20250314_092653.pdf"},
	}
	for _, tc := range cases {
		if got := ArtifactFileName(tc.name, tc.ext, at); got != tc.want {
			t.Errorf("ArtifactFileName(%q, %q) = %q, want %q", tc.name, tc.ext, got, tc.want)
		}
	}
}
