package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/omara/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes a JSON request body into target and validates it.
// The returned error message is safe to show to clients.
func decodeJSON(r *http.Request, target validator) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors.New("invalid request body")
	}
	return target.Validate()
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// storeError maps a store error to a response. Conflicts and constraint
// violations are the client's fault; anything else is logged as ours.
func storeError(w http.ResponseWriter, err error, action, constraintMsg string) {
	var conflict *store.ConflictError
	switch {
	case errors.As(err, &conflict):
		jsonError(w, http.StatusBadRequest, conflict.Reason)
	case errors.Is(err, store.ErrConstraintViolation):
		slog.Warn("constraint violation", "action", action, "error", err)
		jsonError(w, http.StatusBadRequest, constraintMsg)
	default:
		slog.Error("failed to "+action, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

// badRequest writes a 400 for a decode or validation error.
func badRequest(w http.ResponseWriter, err error) {
	jsonError(w, http.StatusBadRequest, err.Error())
}
