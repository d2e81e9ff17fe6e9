package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"companies-engine/internal/apperr"
	"companies-engine/internal/logging"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteAppError maps err to a status and a client-safe message. Store failure
// detail is logged, never returned.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.CodeOf(err)
	message := err.Error()
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		message = ae.Message
	}
	switch code {
	case apperr.CodeStoreUnavailable:
		logging.FromContext(r.Context()).Error("listing store unavailable", zap.Error(err))
		WriteError(w, r, http.StatusServiceUnavailable, string(code), "listing store unavailable")
	case apperr.CodeNotFound:
		WriteError(w, r, http.StatusNotFound, string(code), message)
	case apperr.CodeValidation, apperr.CodeMalformedIdentifier, apperr.CodeEmptyCompanyName:
		WriteError(w, r, http.StatusBadRequest, string(code), message)
	default:
		logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
