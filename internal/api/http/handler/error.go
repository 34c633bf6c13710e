package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skvindia/app-portal/internal/model"
)

const (
	msgMissingFields      = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgNotAuthenticated   = "Not authenticated"
	msgInvalidToken       = "Invalid token"
	msgInternal           = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrBadRequest):
		writeError(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, model.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
	default:
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
