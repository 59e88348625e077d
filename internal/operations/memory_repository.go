package operations

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewMemoryRepository builds an in-memory operation store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{ops: make(map[string]Operation)}
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput, userID string) (Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op := Operation{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Amount:    input.Amount,
		Currency:  input.Currency,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	r.ops[op.ID] = op
	return op, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[id]
	if !ok {
		return Operation{}, ErrNotFound
	}
	return op, nil
}

func (r *memoryRepository) FindByUser(_ context.Context, userID string) ([]Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ops []Operation
	for _, op := range r.ops {
		if op.UserID == userID {
			ops = append(ops, op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].CreatedAt.After(ops[j].CreatedAt) })
	return ops, nil
}
