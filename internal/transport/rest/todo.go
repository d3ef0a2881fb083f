package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

const todoNotFound = "Todo not found"

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	List(ctx context.Context) []domain.Todo
	ListByCompletion(ctx context.Context, completed bool) []domain.Todo
	Get(ctx context.Context, id int64) (*domain.Todo, error)
	Create(ctx context.Context, input todo.CreateInput) (*domain.Todo, error)
	Update(ctx context.Context, id int64, input todo.UpdateInput) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) (*domain.Todo, error)
}

// TodoHandler serves the /api/todos endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTodoRequest struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
	Completed   domain.Optional[bool]   `json:"completed"`
}

// Register mounts the todo routes on mux.
func (h *TodoHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/todos", h.List)
	mux.HandleFunc("POST /api/todos", h.Create)
	mux.HandleFunc("GET /api/todos/status/completed", h.ListCompleted)
	mux.HandleFunc("GET /api/todos/status/pending", h.ListPending)
	mux.HandleFunc("GET /api/todos/{id}", h.Get)
	mux.HandleFunc("PUT /api/todos/{id}", h.Update)
	mux.HandleFunc("DELETE /api/todos/{id}", h.Delete)
}

// List handles GET /api/todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.List(r.Context()))
}

// ListCompleted handles GET /api/todos/status/completed.
func (h *TodoHandler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListByCompletion(r.Context(), true))
}

// ListPending handles GET /api/todos/status/pending.
func (h *TodoHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListByCompletion(r.Context(), false))
}

// Get handles GET /api/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, todoNotFound)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, t)
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), todo.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, t)
}

// Update handles PUT /api/todos/{id}. Only the fields present in the body
// are changed.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, todoNotFound)
		return
	}

	var req updateTodoRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Update(r.Context(), id, todo.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, t)
}

// Delete handles DELETE /api/todos/{id} and returns the removed record.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, todoNotFound)
		return
	}

	t, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, t)
}

func (h *TodoHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, todoNotFound)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Something went wrong!")
	}
}

// parseID reads the {id} path value. A non-numeric id cannot match any
// todo and is reported by callers as not found.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
