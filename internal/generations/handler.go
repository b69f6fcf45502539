package generations

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smartresume-backend/internal/profiles"
	"smartresume-backend/internal/shared/server/middleware"
	"smartresume-backend/internal/shared/server/respond"
	"smartresume-backend/internal/shared/storage/object"
	"smartresume-backend/internal/shared/telemetry"
	"smartresume-backend/resume/render"
)

var downloadContentTypes = map[string]string{
	"txt":  "text/plain; charset=utf-8",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pdf":  "application/pdf",
}

// Handler exposes the generation endpoints.
type Handler struct {
	Service *Service
	Store   object.ObjectStore
}

// RegisterRoutes mounts the generation endpoints. Route-level middleware
// (rate limiting) is supplied by the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, createMiddleware...), h.create)
	rg.POST("/generations", handlers...)
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
	rg.GET("/generations/:id/download", h.download)
}

type createRequest struct {
	Profile  profiles.Profile `json:"profile"`
	Style    string           `json:"style"`
	Industry string           `json:"industry"`
	Model    string           `json:"model"`
}

type generationResponse struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidateName"`
	Style         string    `json:"style"`
	Industry      string    `json:"industry"`
	Model         string    `json:"model"`
	Formats       []string  `json:"formats"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResponse(g Generation) generationResponse {
	return generationResponse{
		ID:            g.ID,
		CandidateName: g.CandidateName,
		Style:         g.Style,
		Industry:      g.Industry,
		Model:         g.Model,
		Formats:       []string{"txt", "docx", "pdf"},
		CreatedAt:     g.CreatedAt,
	}
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	generation, err := h.Service.Create(c.Request.Context(), userID, req.Profile, req.Style, req.Industry, req.Model)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			var details any
			if len(validationErr.Missing) > 0 {
				details = gin.H{"missingFields": validationErr.Missing}
			}
			respond.Error(c, http.StatusBadRequest, "validation_error", validationErr.Error(), details)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", nil)
		case errors.Is(err, ErrEmptyResult):
			respond.Error(c, http.StatusBadGateway, "internal_error", "model returned no resume text", nil)
		default:
			telemetry.Error("generations.create.failed", map[string]any{
				"err":        err.Error(),
				"user_id":    userID,
				"request_id": c.GetString("requestId"),
			})
			respond.Error(c, http.StatusBadGateway, "internal_error", "resume generation failed", nil)
		}
		return
	}

	c.Set("generationId", generation.ID)
	c.Set("llmModel", generation.Model)
	respond.JSON(c, http.StatusCreated, toResponse(generation))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	generations, err := h.Service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}

	out := make([]generationResponse, 0, len(generations))
	for _, g := range generations {
		out = append(out, toResponse(g))
	}
	respond.JSON(c, http.StatusOK, gin.H{"generations": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	generation, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(generation))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "pdf")))
	contentType, ok := downloadContentTypes[format]
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be txt, docx or pdf", nil)
		return
	}

	generation, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var storageKey string
	switch format {
	case "txt":
		storageKey = generation.TxtKey
	case "docx":
		storageKey = generation.DocxKey
	case "pdf":
		storageKey = generation.PdfKey
	}
	if storageKey == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "artifact not available", nil)
		return
	}

	reader, err := h.Store.Open(c.Request.Context(), storageKey)
	if err != nil {
		telemetry.Error("generations.download.failed", map[string]any{
			"err":           err.Error(),
			"generation_id": generation.ID,
			"format":        format,
			"request_id":    c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load artifact", nil)
		return
	}
	defer reader.Close()

	fileName := render.ArtifactFileName(generation.CandidateName, format, generation.CreatedAt)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "access denied", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load generation", nil)
	}
}
