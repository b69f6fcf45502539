package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsTextModelName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"gemini-1.5-flash", true},
		{"gemini-2.5-pro", true},
		{"text-embedding-004", false},
		{"gemini-pro-vision", false},
		{"imagen-3.0-generate", false},
		{"gemini-2.0-flash-audio", false},
		{"gemini-speech-live", false},
	}
	for _, tc := range cases {
		if got := IsTextModelName(tc.name); got != tc.want {
			t.Errorf("IsTextModelName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", ""); err == nil {
		t.Fatal("expected error for empty api key")
	}
	c, err := NewClient("test-key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("baseURL = %q, want default", c.baseURL)
	}
}

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role": "model",
						"parts": []map[string]any{
							{"text": "Jane Doe\n"},
							{"text": "Backend Engineer"},
						},
					},
					"finishReason": "STOP",
				},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     12,
				"candidatesTokenCount": 34,
				"totalTokenCount":      46,
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	text, err := client.GenerateText(context.Background(), "gemini-1.5-flash", "write a resume")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "Jane Doe\nBackend Engineer" {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if gotBody.Contents[0].Parts[0].Text != "write a resume" {
		t.Errorf("prompt = %q", gotBody.Contents[0].Parts[0].Text)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "gemini-1.5-flash", "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		t.Errorf("error = %v", err)
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "gemini-1.5-flash", "prompt")
	if err == nil || !strings.Contains(err.Error(), "missing candidates") {
		t.Fatalf("error = %v", err)
	}
}

func TestGenerateTextRejectsNonTextModel(t *testing.T) {
	client, err := NewClient("test-key", "http://localhost:0")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.GenerateText(context.Background(), "text-embedding-004", "prompt"); err == nil {
		t.Fatal("expected error for embedding model")
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{
				{
					"name":                       "models/gemini-1.5-flash",
					"displayName":                "Gemini 1.5 Flash",
					"supportedGenerationMethods": []string{"generateContent"},
				},
				{
					"name":                       "models/text-embedding-004",
					"displayName":                "Text Embedding",
					"supportedGenerationMethods": []string{"embedContent"},
				},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}
	if models[0].Name != "models/gemini-1.5-flash" {
		t.Errorf("model name = %q", models[0].Name)
	}
	if len(models[0].Methods) != 1 || models[0].Methods[0] != "generateContent" {
		t.Errorf("model methods = %v", models[0].Methods)
	}
}
