package model

import (
	"fmt"
	"strings"
)

// Validate checks a match payload for the fields aggregation depends on.
// It runs before any log append or store mutation so a malformed report
// leaves no partial state behind.
func (p MatchPayload) Validate() error {
	if len(p.Teams) == 0 && len(p.Players) == 0 {
		return fmt.Errorf("%w: match reports no teams and no players", ErrInvalidPayload)
	}
	if p.TeamMode && len(p.Teams) == 0 {
		return fmt.Errorf("%w: team mode match reports no teams", ErrInvalidPayload)
	}
	for i, t := range p.Teams {
		if strings.TrimSpace(t.TeamID) == "" {
			return fmt.Errorf("%w: teams[%d] missing teamId", ErrInvalidPayload, i)
		}
		if t.Score < 0 {
			return fmt.Errorf("%w: teams[%d] has negative score", ErrInvalidPayload, i)
		}
		if t.Rank < 1 {
			return fmt.Errorf("%w: teams[%d] rank must be >= 1", ErrInvalidPayload, i)
		}
	}
	for i, pl := range p.Players {
		if strings.TrimSpace(pl.PlayerID) == "" {
			return fmt.Errorf("%w: players[%d] missing playerId", ErrInvalidPayload, i)
		}
		if strings.TrimSpace(pl.TeamID) == "" {
			return fmt.Errorf("%w: players[%d] missing team", ErrInvalidPayload, i)
		}
		if pl.Stars < 0 {
			return fmt.Errorf("%w: players[%d] has negative stars", ErrInvalidPayload, i)
		}
		if pl.Rank < 1 {
			return fmt.Errorf("%w: players[%d] rank must be >= 1", ErrInvalidPayload, i)
		}
	}
	return nil
}
