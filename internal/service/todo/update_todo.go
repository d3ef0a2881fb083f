package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Update merges the supplied fields into the todo and stamps UpdatedAt.
// An unknown id is reported as not found even when the input is invalid.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Todo, error) {
	now := s.now()
	todo, err := s.todos.Update(ctx, id, func(t *domain.Todo) error {
		if err := input.Validate(); err != nil {
			return err
		}
		input.apply(t)
		t.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.Int64("todo_id", todo.ID),
		slog.Bool("title_set", input.Title.IsSet()),
		slog.Bool("description_set", input.Description.IsSet()),
		slog.Bool("completed_set", input.Completed.IsSet()),
	)

	return todo, nil
}
