// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/starfest/internal/adapters/repository"
	"github.com/okian/starfest/internal/adapters/storage"
	service "github.com/okian/starfest/internal/app"
	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SubmitMatch(ctx context.Context, payload model.MatchPayload) (types.EventSnapshot, error)
	CurrentEvent(ctx context.Context) (types.EventSnapshot, error)
	Player(ctx context.Context, playerID string) (types.PlayerSnapshot, error)
	Team(ctx context.Context, teamID string) (types.TeamSnapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	matchesHandler *MatchesHandler
	eventHandler   *EventHandler
	playersHandler *PlayersHandler
	teamsHandler   *TeamsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, maxBodyBytes int64) *Server {
	return &Server{
		matchesHandler: NewMatchesHandler(deps, maxBodyBytes),
		eventHandler:   NewEventHandler(deps),
		playersHandler: NewPlayersHandler(deps),
		teamsHandler:   NewTeamsHandler(deps),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.healthHandler.HandleMetrics).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/matches", MetricsMiddleware(s.matchesHandler.HandlePostMatch, "matches")).Methods(http.MethodPost)
	apiRouter.HandleFunc("/event", MetricsMiddleware(s.eventHandler.HandleGetEvent, "event")).Methods(http.MethodGet)
	apiRouter.HandleFunc("/players/{playerID}", MetricsMiddleware(s.playersHandler.HandleGetPlayer, "players")).Methods(http.MethodGet)
	apiRouter.HandleFunc("/teams/{teamID}", MetricsMiddleware(s.teamsHandler.HandleGetTeam, "teams")).Methods(http.MethodGet)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates core error kinds to HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveEvent):
		writeError(w, http.StatusConflict, "no_active_event", err)
	case errors.Is(err, model.ErrInvalidPayload):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrTeamNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, storage.ErrSave):
		writeError(w, http.StatusInternalServerError, "storage_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
