package generations

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartresume-backend/internal/llm"
	"smartresume-backend/internal/profiles"
	"smartresume-backend/internal/shared/metrics"
	"smartresume-backend/internal/shared/storage/object"
	"smartresume-backend/internal/shared/telemetry"
	"smartresume-backend/resume/render"
)

const fallbackModel = "gemini-1.5-flash"

// Service runs the generation pipeline: validate, prompt, call the model,
// normalize, render all artifact formats, store them, and record the result.
type Service struct {
	Repo         Repo
	Store        object.ObjectStore
	LLM          llm.Client
	DefaultModel string

	now func() time.Time
}

func NewService(repo Repo, store object.ObjectStore, client llm.Client, defaultModel string) *Service {
	return &Service{
		Repo:         repo,
		Store:        store,
		LLM:          client,
		DefaultModel: defaultModel,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the profile, generates resume text, and stores the three
// rendered artifacts. Nothing is persisted and no provider call is made if
// validation fails.
func (s *Service) Create(ctx context.Context, userID string, profile profiles.Profile, styleRaw, industryRaw, modelRaw string) (Generation, error) {
	if userID == "" {
		return Generation{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Store == nil || s.LLM == nil {
		return Generation{}, errors.New("missing dependencies")
	}

	style, err := profiles.ParseStyle(styleRaw)
	if err != nil {
		return Generation{}, &ValidationError{Reason: err.Error()}
	}
	industry, err := profiles.ParseIndustry(industryRaw)
	if err != nil {
		return Generation{}, &ValidationError{Reason: err.Error()}
	}
	if missing := profile.MissingFields(); len(missing) > 0 {
		return Generation{}, &ValidationError{Missing: missing}
	}

	model := strings.TrimSpace(modelRaw)
	if model == "" {
		model = strings.TrimSpace(s.DefaultModel)
	}
	if model == "" {
		model = fallbackModel
	}
	if !llm.IsTextModelName(model) {
		return Generation{}, &ValidationError{Reason: fmt.Sprintf("model %q cannot generate resume text", model)}
	}

	metrics.IncGenerationStarted()
	started := s.now()

	prompt := profiles.BuildPrompt(profile, style, industry)
	raw, err := s.LLM.GenerateText(ctx, model, prompt)
	if err != nil {
		metrics.IncGenerationFailed()
		return Generation{}, fmt.Errorf("generate resume text: %w", err)
	}

	text := profiles.CleanGeneratedText(raw)
	if text == "" {
		metrics.IncGenerationFailed()
		return Generation{}, ErrEmptyResult
	}

	generation, err := s.storeArtifacts(ctx, userID, profile.Name, style, industry, model, text)
	if err != nil {
		metrics.IncGenerationFailed()
		return Generation{}, err
	}

	if err := s.Repo.Create(ctx, generation); err != nil {
		metrics.IncGenerationFailed()
		return Generation{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(s.now().Sub(started).Milliseconds()))
	telemetry.Info("generations.completed", map[string]any{
		"generation_id": generation.ID,
		"model":         model,
		"style":         string(style),
		"industry":      string(industry),
	})
	return generation, nil
}

func (s *Service) storeArtifacts(ctx context.Context, userID, candidateName string, style profiles.Style, industry profiles.Industry, model, text string) (Generation, error) {
	createdAt := s.now()

	txtBytes := render.RenderTXT(text)
	docxBytes, err := render.RenderDOCX(text)
	if err != nil {
		return Generation{}, fmt.Errorf("render docx: %w", err)
	}
	pdfBytes, err := render.RenderPDF(text)
	if err != nil {
		return Generation{}, fmt.Errorf("render pdf: %w", err)
	}

	txtKey, txtSize, _, err := s.Store.Save(ctx, userID, render.ArtifactFileName(candidateName, "txt", createdAt), bytes.NewReader(txtBytes))
	if err != nil {
		return Generation{}, fmt.Errorf("store txt artifact: %w", err)
	}
	docxKey, docxSize, _, err := s.Store.Save(ctx, userID, render.ArtifactFileName(candidateName, "docx", createdAt), bytes.NewReader(docxBytes))
	if err != nil {
		return Generation{}, fmt.Errorf("store docx artifact: %w", err)
	}
	pdfKey, pdfSize, _, err := s.Store.Save(ctx, userID, render.ArtifactFileName(candidateName, "pdf", createdAt), bytes.NewReader(pdfBytes))
	if err != nil {
		return Generation{}, fmt.Errorf("store pdf artifact: %w", err)
	}

	return Generation{
		ID:            uuid.NewString(),
		UserID:        userID,
		CandidateName: candidateName,
		Style:         string(style),
		Industry:      string(industry),
		Model:         model,
		TxtKey:        txtKey,
		DocxKey:       docxKey,
		PdfKey:        pdfKey,
		TxtSizeBytes:  txtSize,
		DocxSizeBytes: docxSize,
		PdfSizeBytes:  pdfSize,
		CreatedAt:     createdAt,
	}, nil
}

// Get returns a generation record by ID for a user.
func (s *Service) Get(ctx context.Context, userID, generationID string) (Generation, error) {
	if userID == "" || generationID == "" {
		return Generation{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, generationID)
}

// List returns generation records for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Generation, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
