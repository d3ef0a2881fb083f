package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Delete removes the todo and returns the removed record.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.todos.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted", slog.Int64("todo_id", todo.ID))

	return todo, nil
}
