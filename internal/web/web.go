// Package web serves the bundled browser client: a few server-rendered
// pages and the script that drives the todo list through the REST API.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Config controls how the pages reach the API.
type Config struct {
	// APIBaseURL is prefixed to every API call made by the browser.
	// Empty means same origin.
	APIBaseURL string
	Version    string
}

// Handler renders the pages.
type Handler struct {
	cfg    Config
	pages  map[string]*template.Template
	static http.Handler
	log    *slog.Logger
}

type pageData struct {
	Title      string
	Active     string
	APIBaseURL string
	Version    string
}

var pageFiles = map[string]string{
	"home":  "templates/index.html",
	"todos": "templates/todos.html",
	"about": "templates/about.html",
}

// New parses the embedded templates.
func New(cfg Config, logger *slog.Logger) (*Handler, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tmpl, err := template.ParseFS(assets, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	return &Handler{
		cfg:    cfg,
		pages:  pages,
		static: http.StripPrefix("/static/", http.FileServerFS(static)),
		log:    logger.With("component", "web"),
	}, nil
}

// Register mounts the pages and static assets on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.page("home", "Todo App"))
	mux.HandleFunc("GET /todos", h.page("todos", "Todo List"))
	mux.HandleFunc("GET /about", h.page("about", "About"))
	mux.Handle("GET /static/", h.static)
}

func (h *Handler) page(name, title string) http.HandlerFunc {
	tmpl := h.pages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "layout", pageData{
			Title:      title,
			Active:     name,
			APIBaseURL: h.cfg.APIBaseURL,
			Version:    h.cfg.Version,
		})
		if err != nil {
			h.log.ErrorContext(r.Context(), "render page",
				slog.String("page", name),
				slog.String("error", err.Error()),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w) //nolint:errcheck
	}
}
