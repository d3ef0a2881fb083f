package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// Envelope is the uniform wrapper around every single-record and error
// response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListEnvelope wraps collection responses. Data and Count are always
// present, also for an empty list.
type ListEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Count   int  `json:"count"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData[T any](w http.ResponseWriter, status int, data T) {
	writeJSON(w, status, Envelope[T]{Success: true, Data: data})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, ListEnvelope[T]{Success: true, Data: items, Count: len(items)})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope[any]{Success: false, Error: message})
}

// decodeBody decodes a JSON request body into dst. An empty body decodes
// as an empty object.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// validationMessage renders field errors as a client-facing sentence,
// e.g. "Title is required".
func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) == 0 {
		return "invalid request"
	}

	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		if fe.Message == "required" {
			parts[i] = upperFirst(fe.Field) + " is required"
		} else {
			parts[i] = upperFirst(fe.Field) + " " + fe.Message
		}
	}
	return strings.Join(parts, "; ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
