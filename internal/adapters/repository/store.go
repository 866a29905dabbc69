// Package repository defines the statistics store interface and errors.
package repository

import (
	"context"

	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/types"
)

// Store provides read/write access to per-event aggregate statistics.
// Mutation is owned by the ingestion path; reads return deep copies safe to
// serialize while further matches are folded in.
type Store interface {
	// Load seeds the store with restored state. Called once before any
	// InitEvent or ApplyMatch.
	Load(ctx context.Context, prior map[string]*model.EventStats)

	// InitEvent ensures an EventStats entry exists for the event:
	// a restored entry is reused unchanged, otherwise a zero-valued one is
	// created from the roster. Idempotent.
	InitEvent(ctx context.Context, event model.Event)

	// ApplyMatch folds one validated match into the event's aggregates.
	// Returns ErrEventNotFound if the event was never initialized.
	ApplyMatch(ctx context.Context, eventID string, payload model.MatchPayload) error

	// Snapshot returns a deep copy of the event's aggregates.
	Snapshot(ctx context.Context, eventID string) (*model.EventStats, error)

	// Player returns the single-player projection for the event.
	Player(ctx context.Context, eventID, playerID string) (types.PlayerSnapshot, error)

	// Team returns the team aggregates plus the derived list of players who
	// have a stats bucket under that team.
	Team(ctx context.Context, eventID, teamID string) (types.TeamSnapshot, error)

	// All returns a deep copy of every event's aggregates, keyed by event id.
	// Used by the persistence gateway.
	All(ctx context.Context) map[string]*model.EventStats
}
