package todo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// List returns all todos in insertion order.
func (s *Service) List(ctx context.Context) []domain.Todo {
	return s.todos.List(ctx)
}

// ListByCompletion returns the completed (or pending) subset in insertion order.
func (s *Service) ListByCompletion(ctx context.Context, completed bool) []domain.Todo {
	return s.todos.ListByCompletion(ctx, completed)
}

// Get returns a single todo by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return todo, nil
}
