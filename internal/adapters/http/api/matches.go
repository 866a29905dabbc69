// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/starfest/internal/domain/model"
)

// MatchesHandler handles match report submissions.
type MatchesHandler struct {
	deps         Dependencies
	maxBodyBytes int64
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps Dependencies, maxBodyBytes int64) *MatchesHandler {
	return &MatchesHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandlePostMatch handles POST /api/matches requests. The decoded payload is
// handed to the core as-is; validation and folding happen there.
func (h *MatchesHandler) HandlePostMatch(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var payload model.MatchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	snapshot, err := h.deps.SubmitMatch(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
