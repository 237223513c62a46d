package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"poketrainers/internal/account"
	"poketrainers/internal/dex"
	"poketrainers/internal/pokeapi"
	"poketrainers/internal/store"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// decode reads a JSON body into dst. An empty body leaves dst unchanged.
func decode(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// statusOf maps service errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, account.ErrMissingFields),
		errors.Is(err, account.ErrInvalidEmail),
		errors.Is(err, account.ErrWeakPassword),
		errors.Is(err, account.ErrEmptyTeamName),
		errors.Is(err, account.ErrEmptyTeam),
		errors.Is(err, dex.ErrInvalidCatch):
		return http.StatusBadRequest
	case errors.Is(err, account.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, account.ErrTeamNotFound),
		errors.Is(err, dex.ErrNoSpecies),
		pokeapi.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUserExists),
		errors.Is(err, account.ErrTeamExists),
		errors.Is(err, account.ErrNothingToUndo):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Internal errors are logged and
// reported without detail.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
