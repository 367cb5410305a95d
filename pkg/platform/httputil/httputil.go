// Package httputil centralizes JSON response writing so every handler
// produces the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "holocron/pkg/domain-errors"
)

// MessageResponse is the envelope for confirmations and handled failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the envelope for failures no handler dealt with
// (unknown routes, wrong methods, panics).
type StatusResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// ErrEmptyBody is returned by DecodeJSON when the request carries no document.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg}.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageResponse{Message: msg})
}

// WriteStatus writes {"message": msg, "status_code": status}.
func WriteStatus(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, StatusResponse{Message: msg, StatusCode: status})
}

// WriteError translates a coded error to a status and message. Errors
// without a code, and internal errors, never expose their text.
func WriteError(w http.ResponseWriter, err error) {
	de, ok := dErrors.From(err)
	if !ok || de.Code == dErrors.CodeInternal {
		WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	WriteMessage(w, dErrors.HTTPStatus(de.Code), de.Message)
}

// DecodeJSON decodes the request body into v. It returns ErrEmptyBody for a
// missing body, a JSON null, or an empty object.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrEmptyBody
	}
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return err
	}
	switch doc := probe.(type) {
	case nil:
		return ErrEmptyBody
	case map[string]any:
		if len(doc) == 0 {
			return ErrEmptyBody
		}
	}
	return json.Unmarshal(raw, v)
}
