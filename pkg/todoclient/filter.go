package todoclient

// View selects which todos a list shows.
type View string

const (
	ViewAll       View = "all"
	ViewCompleted View = "completed"
	ViewPending   View = "pending"
)

// Filter returns the todos visible in view, preserving order. Unknown views
// behave like ViewAll.
func Filter(todos []Todo, view View) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		switch view {
		case ViewCompleted:
			if !t.Completed {
				continue
			}
		case ViewPending:
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
