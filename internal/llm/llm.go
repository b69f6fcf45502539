package llm

import (
	"context"
	"errors"
	"strings"
)

// Client abstracts generative-language providers for resume text generation.
type Client interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// ModelInfo describes a model exposed by the provider's listing endpoint.
type ModelInfo struct {
	Name        string
	DisplayName string
	Methods     []string
}

// nonTextMarkers name model families that cannot serve text generation.
var nonTextMarkers = []string{"embedding", "vision", "image", "audio", "speech"}

// IsTextModelName reports whether a model name looks usable for text generation.
func IsTextModelName(name string) bool {
	lname := strings.ToLower(name)
	for _, marker := range nonTextMarkers {
		if strings.Contains(lname, marker) {
			return false
		}
	}
	return true
}

// ShortModelName trims the provider path prefix, e.g. "models/gemini-1.5-flash"
// becomes "gemini-1.5-flash".
func ShortModelName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// ErrNotConfigured is returned when the provider client is missing credentials.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// GenerateText returns ErrNotConfigured.
func (PlaceholderClient) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	_ = ctx
	_ = model
	_ = prompt
	return "", ErrNotConfigured
}

// ListModels returns ErrNotConfigured.
func (PlaceholderClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	_ = ctx
	return nil, ErrNotConfigured
}
