// Package todo implements the Todo store in process memory.
// State lives for the lifetime of the Repo and is lost on exit.
package todo

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Repo holds todos in insertion order together with the next-id counter.
// All methods are safe for concurrent use; each one runs to completion
// before any other can observe or change the collection.
type Repo struct {
	mu     sync.RWMutex
	items  []domain.Todo
	nextID int64
}

// New creates an empty repository whose first id is 1.
func New() *Repo {
	return &Repo{nextID: 1}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all todos in insertion order.
// Returns an empty (non-nil) slice when the collection is empty.
func (r *Repo) List(_ context.Context) []domain.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Todo, len(r.items))
	for i, t := range r.items {
		out[i] = t.Clone()
	}
	return out
}

// ListByCompletion returns the todos whose completed flag equals completed,
// in insertion order.
func (r *Repo) ListByCompletion(_ context.Context, completed bool) []domain.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Todo, 0, len(r.items))
	for _, t := range r.items {
		if t.MatchesCompletion(completed) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// GetByID returns the todo with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(_ context.Context, id int64) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	t := r.items[i].Clone()
	return &t, nil
}

// Count returns the number of stored todos.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create assigns the next id to todo and appends it. Any id already set on
// the argument is ignored; ids are never reused.
func (r *Repo) Create(_ context.Context, todo domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = r.nextID
	r.nextID++

	stored := todo.Clone()
	r.items = append(r.items, stored)

	out := stored.Clone()
	return &out, nil
}

// Update applies fn to a copy of the stored todo with the given id and
// stores the result. If fn returns an error nothing is stored and the error
// is returned as is. Returns domain.ErrNotFound if the todo does not exist,
// in which case fn is not called.
func (r *Repo) Update(_ context.Context, id int64, fn func(*domain.Todo) error) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}

	updated := r.items[i].Clone()
	if err := fn(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.items[i] = updated

	out := updated.Clone()
	return &out, nil
}

// Delete removes the todo with the given id and returns it.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(_ context.Context, id int64) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}

	removed := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	return &removed, nil
}

// indexOf returns the slice position of id, or -1. Caller holds r.mu.
func (r *Repo) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
}
