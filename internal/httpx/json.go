// Package httpx holds the JSON helpers shared by all HTTP handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diestrin/social-media-automation/internal/apperror"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorJSON writes a {"message": ...} error body.
func ErrorJSON(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// DecodeJSON decodes the request body into v, rejecting trailing garbage.
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A second token means the body held more than one JSON value.
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// WriteError maps a service error onto the HTTP status taxonomy.
// Messages stay generic; internals are never echoed to the caller.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		ErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		ErrorJSON(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrUnauthenticated):
		ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, apperror.ErrNotFound):
		ErrorJSON(w, http.StatusNotFound, err.Error())
	default:
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}
