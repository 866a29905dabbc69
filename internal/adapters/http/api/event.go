// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	service "github.com/okian/starfest/internal/app"
)

// EventHandler handles current-event queries.
type EventHandler struct {
	deps Dependencies
}

// NewEventHandler creates a new event handler.
func NewEventHandler(deps Dependencies) *EventHandler {
	return &EventHandler{deps: deps}
}

// HandleGetEvent handles GET /api/event requests. When no event is active
// the current event simply does not exist, so the condition maps to 404
// rather than the conflict submission reports.
func (h *EventHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.deps.CurrentEvent(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveEvent) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
