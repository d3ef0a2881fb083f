package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
	"github.com/heartmarshall/todo-backend/internal/web"
)

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Todos    *todo.Service
	Registry *prometheus.Registry
}

// NewRouter builds the full HTTP handler: routes plus the middleware chain.
func NewRouter(deps RouterDeps) (http.Handler, error) {
	cfg := deps.Config
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", rest.NewHealthHandler(Version).Health)
	rest.NewTodoHandler(deps.Todos, deps.Logger).Register(mux)

	if cfg.Web.Enabled {
		pages, err := web.New(web.Config{
			APIBaseURL: cfg.Web.APIBaseURL,
			Version:    Version,
		}, deps.Logger)
		if err != nil {
			return nil, fmt.Errorf("web client: %w", err)
		}
		pages.Register(mux)
	}

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled && deps.Registry != nil {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		metrics = middleware.NewMetrics(deps.Registry)
	}

	mux.HandleFunc("/", rest.NotFound)

	return middleware.Standard(deps.Logger, cfg.CORS, metrics)(mux), nil
}
