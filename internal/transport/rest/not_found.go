package rest

import "net/http"

// NotFound answers every request that no route matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}
