package generations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleGeneration() Generation {
	return Generation{
		ID:            "gen-1",
		UserID:        "user-1",
		CandidateName: "Jane Doe",
		Style:         "ats",
		Industry:      "Software",
		Model:         "gemini-1.5-flash",
		TxtKey:        "objects/a/txt",
		DocxKey:       "objects/a/docx",
		PdfKey:        "objects/a/pdf",
		TxtSizeBytes:  120,
		DocxSizeBytes: 2048,
		PdfSizeBytes:  4096,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generation := sampleGeneration()

	mock.ExpectExec("INSERT INTO generations").
		WithArgs(
			generation.ID,
			generation.UserID,
			generation.CandidateName,
			generation.Style,
			generation.Industry,
			generation.Model,
			generation.TxtKey,
			generation.DocxKey,
			generation.PdfKey,
			generation.TxtSizeBytes,
			generation.DocxSizeBytes,
			generation.PdfSizeBytes,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), generation); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func generationColumns() []string {
	return []string{
		"id", "user_id", "candidate_name", "style", "industry", "model",
		"txt_key", "docx_key", "pdf_key", "txt_size_bytes", "docx_size_bytes", "pdf_size_bytes", "created_at",
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generation := sampleGeneration()

	rows := sqlmock.NewRows(generationColumns()).AddRow(
		generation.ID, generation.UserID, generation.CandidateName,
		generation.Style, generation.Industry, generation.Model,
		generation.TxtKey, generation.DocxKey, generation.PdfKey,
		generation.TxtSizeBytes, generation.DocxSizeBytes, generation.PdfSizeBytes,
		generation.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs(generation.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "user-1", generation.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != generation.ID || got.PdfKey != generation.PdfKey {
		t.Fatalf("unexpected record: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDWrongOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generation := sampleGeneration()

	rows := sqlmock.NewRows(generationColumns()).AddRow(
		generation.ID, generation.UserID, generation.CandidateName,
		generation.Style, generation.Industry, generation.Model,
		generation.TxtKey, generation.DocxKey, generation.PdfKey,
		generation.TxtSizeBytes, generation.DocxSizeBytes, generation.PdfSizeBytes,
		generation.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs(generation.ID).
		WillReturnRows(rows)

	if _, err := repo.GetByID(context.Background(), "user-2", generation.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(generationColumns()))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generation := sampleGeneration()

	rows := sqlmock.NewRows(generationColumns()).AddRow(
		generation.ID, generation.UserID, generation.CandidateName,
		generation.Style, generation.Industry, generation.Model,
		generation.TxtKey, generation.DocxKey, generation.PdfKey,
		generation.TxtSizeBytes, generation.DocxSizeBytes, generation.PdfSizeBytes,
		generation.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 1 || out[0].ID != generation.ID {
		t.Fatalf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
