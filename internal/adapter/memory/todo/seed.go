package todo

import (
	"time"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// SeedTodos returns the records present at process start, stamped with now.
// They receive ids 1..3 when seeded into an empty repository.
func SeedTodos(now time.Time) []domain.Todo {
	return []domain.Todo{
		{
			Title:       "Learn Dokploy",
			Description: "Understand how to deploy apps with Dokploy",
			CreatedAt:   now,
		},
		{
			Title:       "Test Auto Deploy",
			Description: "Test automatic deployment feature",
			CreatedAt:   now,
		},
		{
			Title:       "Test Preview Deployments",
			Description: "Test preview deployment functionality",
			Completed:   true,
			CreatedAt:   now,
		},
	}
}

// NewSeeded creates a repository preloaded with SeedTodos(now).
func NewSeeded(now time.Time) *Repo {
	r := New()
	for _, t := range SeedTodos(now) {
		t.ID = r.nextID
		r.nextID++
		r.items = append(r.items, t)
	}
	return r
}
