// Package types contains read shapes shared between the service and the API.
package types

import "github.com/okian/starfest/internal/domain/model"

// EventSnapshot is the whole-event projection returned by match submission
// and the current-event query.
type EventSnapshot struct {
	Info  model.Event       `json:"info"`
	Stats *model.EventStats `json:"stats"`
}

// PlayerSnapshot is the single-player projection.
type PlayerSnapshot struct {
	PlayerID string                            `json:"playerId"`
	Nickname string                            `json:"nickname"`
	Teams    map[string]*model.PlayerTeamStats `json:"teams"`
}

// TeamPlayer is one line of a team projection: a player who has a stats
// bucket under that team.
type TeamPlayer struct {
	PlayerID string                `json:"playerId"`
	Nickname string                `json:"nickname"`
	Stats    model.PlayerTeamStats `json:"stats"`
}

// TeamSnapshot is the single-team projection: the team aggregates plus the
// derived list of players who played for it.
type TeamSnapshot struct {
	TeamID  string          `json:"teamId"`
	Team    model.TeamStats `json:"teamStats"`
	Players []TeamPlayer    `json:"players"`
}
