package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/team"
	"github.com/notjagan/pokeanalytics/pkg/teambuilder"
	"go.uber.org/zap"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

// fail maps domain errors onto statuses. Anything unrecognized is logged and
// reported as an internal error without its message.
func (srv *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNoPokemon):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, team.ErrEmptyRoster):
		writeError(w, http.StatusUnprocessableEntity, "empty_roster", err.Error())
	case errors.Is(err, teambuilder.ErrNoOwner), errors.Is(err, errBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		srv.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
