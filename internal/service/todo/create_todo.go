package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Create validates the input and appends a new, not yet completed todo.
// The collection is left untouched when validation fails.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	todo, err := s.todos.Create(ctx, domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.Int64("todo_id", todo.ID),
		slog.String("title", preview(todo.Title)),
	)

	return todo, nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > 50 {
		return string(r[:50])
	}
	return s
}
