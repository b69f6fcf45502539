package generations

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generation record.
func (r *PGRepo) Create(ctx context.Context, generation Generation) error {
	const query = `
INSERT INTO generations (
    id, user_id, candidate_name, style, industry, model,
    txt_key, docx_key, pdf_key, txt_size_bytes, docx_size_bytes, pdf_size_bytes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.DB.ExecContext(ctx, query,
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
		generation.CreatedAt,
	)
	return err
}

// GetByID returns a generation record by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, generationID string) (Generation, error) {
	const query = `
SELECT id, user_id, candidate_name, style, industry, model,
       txt_key, docx_key, pdf_key, txt_size_bytes, docx_size_bytes, pdf_size_bytes, created_at
FROM generations
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var generation Generation
	err := r.DB.QueryRowContext(ctx, query, generationID).Scan(
		&generation.ID,
		&generation.UserID,
		&generation.CandidateName,
		&generation.Style,
		&generation.Industry,
		&generation.Model,
		&generation.TxtKey,
		&generation.DocxKey,
		&generation.PdfKey,
		&generation.TxtSizeBytes,
		&generation.DocxSizeBytes,
		&generation.PdfSizeBytes,
		&generation.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	if generation.UserID != userID {
		return Generation{}, ErrForbidden
	}
	return generation, nil
}

// ListByUser lists generation records ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, candidate_name, style, industry, model,
       txt_key, docx_key, pdf_key, txt_size_bytes, docx_size_bytes, pdf_size_bytes, created_at
FROM generations
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var generation Generation
		if err := rows.Scan(
			&generation.ID,
			&generation.UserID,
			&generation.CandidateName,
			&generation.Style,
			&generation.Industry,
			&generation.Model,
			&generation.TxtKey,
			&generation.DocxKey,
			&generation.PdfKey,
			&generation.TxtSizeBytes,
			&generation.DocxSizeBytes,
			&generation.PdfSizeBytes,
			&generation.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, generation)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
