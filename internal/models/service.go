package models

import (
	"context"
	"strings"

	"smartresume-backend/internal/llm"
	"smartresume-backend/internal/shared/telemetry"
)

// defaultModels is served when the provider listing is unreachable, so the UI
// always has something to offer.
var defaultModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-2.0-flash-exp",
}

// preferredModels is the recommendation order, best first.
var preferredModels = []string{
	"gemini-2.5-pro",
	"gemini-2.5-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
}

// Catalog lists the text-generation models available to the configured key.
type Catalog struct {
	client llm.Client
}

func NewCatalog(client llm.Client) *Catalog {
	return &Catalog{client: client}
}

// Entry is one usable model: its short name plus the provider's display name.
type Entry struct {
	Name        string
	DisplayName string
}

// Listing is the catalog result: usable models, the recommended pick, and
// whether the list is the static fallback.
type Listing struct {
	Models      []Entry
	Recommended string
	Fallback    bool
}

func fallbackListing() Listing {
	entries := make([]Entry, 0, len(defaultModels))
	for _, name := range defaultModels {
		entries = append(entries, Entry{Name: name, DisplayName: name})
	}
	return Listing{
		Models:      entries,
		Recommended: PickTextModel(defaultModels),
		Fallback:    true,
	}
}

// List returns the text-capable models from the provider, falling back to a
// static list when the provider cannot be reached.
func (s *Catalog) List(ctx context.Context) Listing {
	infos, err := s.client.ListModels(ctx)
	if err != nil {
		telemetry.Warn("models.list.fallback", map[string]any{"err": err.Error()})
		return fallbackListing()
	}

	entries := make([]Entry, 0, len(infos))
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if !supportsGeneration(info) {
			continue
		}
		short := llm.ShortModelName(info.Name)
		if !llm.IsTextModelName(short) {
			continue
		}
		displayName := info.DisplayName
		if displayName == "" {
			displayName = short
		}
		entries = append(entries, Entry{Name: short, DisplayName: displayName})
		names = append(names, short)
	}
	if len(entries) == 0 {
		return fallbackListing()
	}

	return Listing{
		Models:      entries,
		Recommended: PickTextModel(names),
	}
}

func supportsGeneration(info llm.ModelInfo) bool {
	if len(info.Methods) == 0 {
		return true
	}
	for _, m := range info.Methods {
		if strings.EqualFold(m, "generateContent") {
			return true
		}
	}
	return false
}

// PickTextModel chooses the best model from a list of short names, preferring
// the known-good families in order and otherwise taking the first text model.
// Preference matches by substring so suffixed variants like
// "gemini-1.5-flash-latest" or "gemini-1.5-flash-8b" still count for their
// family.
func PickTextModel(names []string) string {
	for _, preferred := range preferredModels {
		for _, name := range names {
			if strings.Contains(name, preferred) && llm.IsTextModelName(name) {
				return name
			}
		}
	}
	for _, name := range names {
		if llm.IsTextModelName(name) {
			return name
		}
	}
	return ""
}
