package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
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

// writeDomainError maps errors from the catalog and board packages onto the
// error envelope.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownValue), errors.Is(err, catalog.ErrDistanceRange):
		WriteError(w, r, http.StatusBadRequest, "invalid_filter", err.Error())
	case errors.Is(err, board.ErrSessionNotFound):
		WriteError(w, r, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, board.ErrTooManySessions):
		WriteError(w, r, http.StatusTooManyRequests, "too_many_sessions", err.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
