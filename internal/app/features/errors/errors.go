// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger writes JSON error responses and logs the server-side
// detail. Handlers hold one so response shape and logging stay uniform
// across features.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// BadRequest answers 400 with the given message. Client mistakes are
// not logged as errors.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// NotFound answers 404.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "not found"
	}
	WriteJSON(w, http.StatusNotFound, errorBody{Error: msg})
}

// Internal logs the underlying error and answers 500 with a generic
// message; the detail stays server-side.
func (e *ErrorLogger) Internal(w http.ResponseWriter, op string, err error) {
	if e.Log != nil {
		e.Log.Error(op, zap.Error(err))
	}
	WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

// Unavailable logs the error and answers 503, for dependency outages.
func (e *ErrorLogger) Unavailable(w http.ResponseWriter, op string, err error) {
	if e.Log != nil {
		e.Log.Error(op, zap.Error(err))
	}
	WriteJSON(w, http.StatusServiceUnavailable, errorBody{Error: "service unavailable"})
}
