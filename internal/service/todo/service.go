package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

type todoRepo interface {
	List(ctx context.Context) []domain.Todo
	ListByCompletion(ctx context.Context, completed bool) []domain.Todo
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, id int64, fn func(*domain.Todo) error) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) (*domain.Todo, error)
}

// Service provides todo list operations.
type Service struct {
	todos todoRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Todo service.
func NewService(
	log *slog.Logger,
	todos todoRepo,
) *Service {
	return &Service{
		todos: todos,
		log:   log.With("service", "todo"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}
