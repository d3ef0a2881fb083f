package todo

import "github.com/heartmarshall/todo-backend/internal/domain"

// CreateInput holds the parameters for creating a todo.
type CreateInput struct {
	Title       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if i.Title == "" {
		return domain.NewValidationError("title", "required")
	}
	return nil
}

// UpdateInput holds the fields of a partial update. Unset fields are left
// untouched on the stored todo.
type UpdateInput struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Completed   domain.Optional[bool]
}

// Validate checks all fields and collects all errors.
// A supplied title must be non-empty; description may be cleared to "".
// Titles are taken as sent, so a title of spaces is accepted.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title.IsNull() {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be null"})
	} else if title, ok := i.Title.Get(); ok && title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.Description.IsNull() {
		errs = append(errs, domain.FieldError{Field: "description", Message: "must not be null"})
	}
	if i.Completed.IsNull() {
		errs = append(errs, domain.FieldError{Field: "completed", Message: "must not be null"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply merges the supplied fields into t.
func (i UpdateInput) apply(t *domain.Todo) {
	t.Title = i.Title.OrElse(t.Title)
	t.Description = i.Description.OrElse(t.Description)
	t.Completed = i.Completed.OrElse(t.Completed)
}
