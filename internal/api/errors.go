package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"requestdesk/internal/desk"
	"requestdesk/internal/forms"
	"requestdesk/internal/request"
)

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: APIError{Code: code, Message: message},
	})
}

// StatusFor maps desk errors to a status and error code. ok is false for
// errors that are not the caller's fault.
func StatusFor(err error) (status int, code string, ok bool) {
	var mismatch desk.ViewMismatchError
	switch {
	case errors.Is(err, request.ErrUnknownCategory):
		return http.StatusNotFound, "NOT_FOUND", true
	case errors.Is(err, forms.ErrUnknownField):
		return http.StatusBadRequest, "UNKNOWN_FIELD", true
	case errors.Is(err, desk.ErrNoActiveForm), errors.As(err, &mismatch):
		return http.StatusConflict, "VIEW_MISMATCH", true
	default:
		return http.StatusInternalServerError, "INTERNAL", false
	}
}
