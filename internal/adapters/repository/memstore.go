package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/scoring"
	"github.com/okian/starfest/internal/domain/types"
)

// MemStore implements Store with an in-memory map guarded by a RWMutex.
// Writers (Load, InitEvent, ApplyMatch) take the write lock; all reads copy
// under the read lock so queries can run concurrently with each other.
type MemStore struct {
	mu     sync.RWMutex
	events map[string]*model.EventStats
}

// NewMemStore creates an empty in-memory statistics store.
func NewMemStore(_ context.Context) *MemStore {
	return &MemStore{events: make(map[string]*model.EventStats)}
}

// Load seeds the store with restored aggregates.
func (s *MemStore) Load(_ context.Context, prior map[string]*model.EventStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, stats := range prior {
		if stats == nil {
			continue
		}
		s.events[id] = stats
	}
}

// InitEvent ensures an EventStats entry exists for the event. An existing
// entry (restored or already initialized) is reused unchanged, so calling
// this twice never zeroes accumulated totals.
func (s *MemStore) InitEvent(_ context.Context, event model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; ok {
		return
	}
	s.events[event.ID] = model.NewEventStats(event)
}

// ApplyMatch folds one validated match into the event's aggregates.
//
// Team aggregates are touched only in team mode, and only for team ids known
// to the event roster; unknown team ids are skipped without error. Player
// buckets are created lazily for whatever player/team pair the report names,
// and the nickname is overwritten with the latest reported value.
func (s *MemStore) ApplyMatch(_ context.Context, eventID string, payload model.MatchPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.events[eventID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	if payload.TeamMode {
		for _, entry := range payload.Teams {
			team, known := stats.Teams[entry.TeamID]
			if !known {
				continue
			}
			team.TotalStars += entry.Score
			team.Points += scoring.Points(entry.Rank)
			if scoring.IsWin(entry.Rank) {
				team.MatchesWon++
			}
		}
	}

	for _, entry := range payload.Players {
		record, known := stats.Players[entry.PlayerID]
		if !known {
			record = &model.PlayerRecord{Teams: make(map[string]*model.PlayerTeamStats)}
			stats.Players[entry.PlayerID] = record
		}
		record.Nickname = entry.Nickname

		bucket, known := record.Teams[entry.TeamID]
		if !known {
			bucket = &model.PlayerTeamStats{}
			record.Teams[entry.TeamID] = bucket
		}
		bucket.MatchesPlayed++
		bucket.TotalStars += entry.Stars
		if scoring.IsWin(entry.Rank) {
			bucket.Wins++
		}
		if scoring.IsTopThree(entry.Rank) {
			bucket.TopThree++
		}
	}

	return nil
}

// Snapshot returns a deep copy of the event's aggregates.
func (s *MemStore) Snapshot(_ context.Context, eventID string) (*model.EventStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	return stats.Clone(), nil
}

// Player returns the single-player projection for the event.
func (s *MemStore) Player(_ context.Context, eventID, playerID string) (types.PlayerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.events[eventID]
	if !ok {
		return types.PlayerSnapshot{}, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	record, ok := stats.Players[playerID]
	if !ok {
		return types.PlayerSnapshot{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	clone := record.Clone()
	return types.PlayerSnapshot{
		PlayerID: playerID,
		Nickname: clone.Nickname,
		Teams:    clone.Teams,
	}, nil
}

// Team returns the team aggregates plus all players with a stats bucket
// under that team, sorted by player id for stable output. The player list is
// derived by filtering player records, never stored separately.
func (s *MemStore) Team(_ context.Context, eventID, teamID string) (types.TeamSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.events[eventID]
	if !ok {
		return types.TeamSnapshot{}, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	team, ok := stats.Teams[teamID]
	if !ok {
		return types.TeamSnapshot{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	snap := types.TeamSnapshot{
		TeamID:  teamID,
		Team:    *team,
		Players: make([]types.TeamPlayer, 0),
	}
	for playerID, record := range stats.Players {
		bucket, played := record.Teams[teamID]
		if !played {
			continue
		}
		snap.Players = append(snap.Players, types.TeamPlayer{
			PlayerID: playerID,
			Nickname: record.Nickname,
			Stats:    *bucket,
		})
	}
	sort.Slice(snap.Players, func(i, j int) bool {
		return snap.Players[i].PlayerID < snap.Players[j].PlayerID
	})
	return snap, nil
}

// All returns a deep copy of every event's aggregates.
func (s *MemStore) All(_ context.Context) map[string]*model.EventStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*model.EventStats, len(s.events))
	for id, stats := range s.events {
		out[id] = stats.Clone()
	}
	return out
}
