package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/localbiz/marketplace-api/internal/apperrors"
	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/validation"
)

// errUnauthorized covers handlers reached without claims in context.
var errUnauthorized = apperrors.New("unauthorized", http.StatusUnauthorized)

// Response is the uniform envelope returned by every endpoint.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Payload on success
	Data any `json:"data,omitempty"`

	// Error message on failure
	Error string `json:"error,omitempty"`

	// Aggregated field errors for validation failures
	Details []validation.FieldError `json:"details,omitempty"`

	// HTTP status code
	StatusCode int `json:"statusCode"`

	// RFC3339 response timestamp
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	resp.StatusCode = statusCode
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// writeSuccess writes the success envelope.
func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, Response{Success: true, Data: data})
}

// writeError writes the error envelope. Operational errors surface verbatim
// with their own status; anything else collapses to a generic 500.
func writeError(w http.ResponseWriter, err error) {
	if !apperrors.IsOperational(err) {
		logger.Log.Errorw("internal server error", "err", err)
	}
	writeJSON(w, apperrors.Status(err), Response{
		Success: false,
		Error:   apperrors.Message(err),
	})
}

// writeValidationError writes a 400 with the aggregated field errors.
func writeValidationError(w http.ResponseWriter, details []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   "validation failed",
		Details: details,
	})
}

// writeBadRequest writes a 400 with a plain message.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   message,
	})
}
