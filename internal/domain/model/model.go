// Package model contains domain models passed between layers.
package model

import "time"

// Team describes one roster entry of an event.
type Team struct {
	Name string `json:"name" koanf:"name"`
}

// Event represents one competition with a fixed team roster. Exactly zero or
// one event is active at a time; events are immutable after catalog load.
type Event struct {
	ID     string          `json:"id" koanf:"id"`
	Name   string          `json:"name" koanf:"name"`
	Teams  map[string]Team `json:"teams" koanf:"teams"`
	Active bool            `json:"active" koanf:"active"`
}

// TeamStats holds the cumulative aggregates for one team in one event.
type TeamStats struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	TotalStars int    `json:"totalStars"`
	MatchesWon int    `json:"matchesWon"`
}

// PlayerTeamStats holds a player's cumulative aggregates for one team they
// played for. All counters are monotonically non-decreasing while the event
// is active.
type PlayerTeamStats struct {
	MatchesPlayed int `json:"matchesPlayed"`
	TotalStars    int `json:"totalStars"`
	Wins          int `json:"wins"`
	TopThree      int `json:"topThree"`
}

// PlayerRecord tracks one player across all teams they played for during an
// event. Nickname is overwritten with the latest reported value on every
// match.
type PlayerRecord struct {
	Nickname string                      `json:"nickname"`
	Teams    map[string]*PlayerTeamStats `json:"teams"`
}

// EventStats is the full aggregate state for one event id.
type EventStats struct {
	Teams   map[string]*TeamStats    `json:"teams"`
	Players map[string]*PlayerRecord `json:"playerStats"`
}

// NewEventStats builds a zero-valued EventStats for an event roster: one
// zeroed TeamStats per roster team and no player records.
func NewEventStats(event Event) *EventStats {
	s := &EventStats{
		Teams:   make(map[string]*TeamStats, len(event.Teams)),
		Players: make(map[string]*PlayerRecord),
	}
	for id, team := range event.Teams {
		s.Teams[id] = &TeamStats{Name: team.Name}
	}
	return s
}

// Clone returns a deep copy safe to serialize concurrently with mutation of
// the original.
func (s *EventStats) Clone() *EventStats {
	if s == nil {
		return nil
	}
	c := &EventStats{
		Teams:   make(map[string]*TeamStats, len(s.Teams)),
		Players: make(map[string]*PlayerRecord, len(s.Players)),
	}
	for id, ts := range s.Teams {
		dup := *ts
		c.Teams[id] = &dup
	}
	for id, pr := range s.Players {
		c.Players[id] = pr.Clone()
	}
	return c
}

// Clone returns a deep copy of the player record.
func (p *PlayerRecord) Clone() *PlayerRecord {
	if p == nil {
		return nil
	}
	c := &PlayerRecord{
		Nickname: p.Nickname,
		Teams:    make(map[string]*PlayerTeamStats, len(p.Teams)),
	}
	for teamID, pts := range p.Teams {
		dup := *pts
		c.Teams[teamID] = &dup
	}
	return c
}

// TeamEntry is one team's reported line in a match payload.
type TeamEntry struct {
	TeamID string `json:"teamId"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}

// PlayerEntry is one player's reported line in a match payload.
type PlayerEntry struct {
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
	TeamID   string `json:"team"`
	Stars    int    `json:"stars"`
	Rank     int    `json:"rank"`
}

// MatchPayload mirrors the request schema for POST /api/matches.
type MatchPayload struct {
	TeamMode bool          `json:"isTeamMode"`
	Teams    []TeamEntry   `json:"teams"`
	Players  []PlayerEntry `json:"players"`
}

// MatchRecord is one immutable entry of the append-only match log: the
// reported payload plus the event it was counted against and the time it was
// written. Records are an audit trail and never replayed for recomputation.
type MatchRecord struct {
	ID         string       `json:"id"`
	EventID    string       `json:"eventId"`
	ReportedAt time.Time    `json:"timestamp"`
	Payload    MatchPayload `json:"payload"`
}
