package domain

import "time"

// Todo is a single item of the todo list.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a copy that shares no pointers with t.
func (t Todo) Clone() Todo {
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		t.UpdatedAt = &u
	}
	return t
}

// MatchesCompletion reports whether the todo is in the given completion state.
func (t Todo) MatchesCompletion(completed bool) bool {
	return t.Completed == completed
}
