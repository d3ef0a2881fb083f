// Package middleware holds the http.Handler wrappers applied to every request.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the stack wrapped around the router, outermost first:
// Recovery, RequestID, SecureHeaders, CORS, Logger and, when metrics is
// non-nil, Metrics. Metrics stays innermost so it sees the mux-set pattern.
func Standard(logger *slog.Logger, cors config.CORSConfig, metrics *Metrics) Middleware {
	mws := []Middleware{
		Recovery(logger),
		RequestID(),
		SecureHeaders(),
		CORS(cors),
		Logger(logger),
	}
	if metrics != nil {
		mws = append(mws, metrics.Middleware())
	}
	return Chain(mws...)
}
