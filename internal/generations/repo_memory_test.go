package generations

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func seedMemoryRepo(t *testing.T, repo *MemoryRepo, userID string, n int) {
	t.Helper()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), Generation{
			ID:            fmt.Sprintf("gen-%03d", i),
			UserID:        userID,
			CandidateName: "Jane Doe",
			Style:         "ats",
			Industry:      "General",
			Model:         "gemini-1.5-flash",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed Create: %v", err)
		}
	}
}

func TestMemoryRepoListClampsLimitLikePostgres(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, "user-1", 25)

	out, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("limit=0: got %d records, want default 20", len(out))
	}

	out, err = repo.ListByUser(context.Background(), "user-1", -1, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("limit=-1: got %d records, want default 20", len(out))
	}

	out, err = repo.ListByUser(context.Background(), "user-1", 1000, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 25 {
		t.Fatalf("limit=1000: got %d records, want all 25", len(out))
	}
}

func TestMemoryRepoListClampsLimitToMax(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, "user-1", 105)

	out, err := repo.ListByUser(context.Background(), "user-1", 1000, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("got %d records, want max 100", len(out))
	}
}

func TestMemoryRepoListNewestFirstWithOffset(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, "user-1", 5)

	out, err := repo.ListByUser(context.Background(), "user-1", 2, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].ID != "gen-003" || out[1].ID != "gen-002" {
		t.Fatalf("order = %s, %s", out[0].ID, out[1].ID)
	}
}
