package generations

import "time"

// Generation records one resume generation: who requested it, how it was
// labeled, and where each rendered artifact lives. Profile contents are not
// stored, only the candidate name needed for download file naming.
type Generation struct {
	ID            string
	UserID        string
	CandidateName string
	Style         string
	Industry      string
	Model         string
	TxtKey        string
	DocxKey       string
	PdfKey        string
	TxtSizeBytes  int64
	DocxSizeBytes int64
	PdfSizeBytes  int64
	CreatedAt     time.Time
	DeletedAt     *time.Time
}
