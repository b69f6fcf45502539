package generations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generation records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Generation
	byUser map[string][]Generation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Generation),
		byUser: make(map[string][]Generation),
	}
}

// Create stores the generation record.
func (r *MemoryRepo) Create(ctx context.Context, generation Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[generation.ID] = generation
	r.byUser[generation.UserID] = append(r.byUser[generation.UserID], generation)
	return nil
}

// GetByID returns a generation record by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, generationID string) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	generation, ok := r.byID[generationID]
	if !ok {
		return Generation{}, ErrNotFound
	}
	if generation.UserID != userID {
		return Generation{}, ErrForbidden
	}
	return generation, nil
}

// ListByUser returns generation records for a user, newest first, with
// limit/offset. Limits clamp the same way as the Postgres repo.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	userGenerations := r.byUser[userID]
	r.mu.RUnlock()

	if len(userGenerations) == 0 || offset >= len(userGenerations) {
		return []Generation{}, nil
	}

	generations := make([]Generation, len(userGenerations))
	copy(generations, userGenerations)
	sort.Slice(generations, func(i, j int) bool {
		return generations[i].CreatedAt.After(generations[j].CreatedAt)
	})

	end := len(generations)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return generations[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
