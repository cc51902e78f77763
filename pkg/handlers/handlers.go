// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ekskog/blog-site/pkg/middleware"
)

// ErrorResponse is the body written by RespondError.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
// The body is encoded before the header is written, so an encoding failure
// is reported as a 500 rather than a truncated document.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, "encode response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// RespondError logs the error and writes a JSON error response carrying the
// request id assigned by middleware.RequestID, when present.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	requestID := middleware.RequestIDFrom(r.Context())
	logger.Error("handler error", "error", err, "status", status, "request_id", requestID)
	RespondJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: requestID})
}
