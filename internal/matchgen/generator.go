package matchgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"

	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/scoring"
)

// Generation ranges.
const (
	maxTeamScore   = 100
	maxPlayerStars = 12
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// Expected accumulates the totals the generated matches should produce, so a
// run can be verified against the service's own aggregation.
type Expected struct {
	TeamStars  map[string]int
	TeamPoints map[string]int
	TeamWins   map[string]int
}

// newExpected builds an empty expectation for a roster.
func newExpected(teamIDs []string) *Expected {
	e := &Expected{
		TeamStars:  make(map[string]int, len(teamIDs)),
		TeamPoints: make(map[string]int, len(teamIDs)),
		TeamWins:   make(map[string]int, len(teamIDs)),
	}
	for _, id := range teamIDs {
		e.TeamStars[id] = 0
		e.TeamPoints[id] = 0
		e.TeamWins[id] = 0
	}
	return e
}

// generateMatches builds team-mode match payloads over the given roster and
// records the totals they should add up to. Every team appears in every
// match with a shuffled ranking.
func generateMatches(cfg *Config, teamIDs []string) ([]model.MatchPayload, *Expected) {
	sorted := append([]string(nil), teamIDs...)
	sort.Strings(sorted)

	expected := newExpected(sorted)
	matches := make([]model.MatchPayload, 0, cfg.NumMatches)

	for m := 0; m < cfg.NumMatches; m++ {
		ranks := shuffledRanks(len(sorted))

		payload := model.MatchPayload{TeamMode: true}
		for i, teamID := range sorted {
			score := randomInt(maxTeamScore + 1)
			payload.Teams = append(payload.Teams, model.TeamEntry{
				TeamID: teamID,
				Score:  score,
				Rank:   ranks[i],
			})
			expected.TeamStars[teamID] += score
			expected.TeamPoints[teamID] += scoring.Points(ranks[i])
			if scoring.IsWin(ranks[i]) {
				expected.TeamWins[teamID]++
			}
		}

		for p := 0; p < cfg.PlayersPerMatch; p++ {
			team := sorted[randomInt(len(sorted))]
			playerID := fmt.Sprintf("gen-player-%03d", p)
			payload.Players = append(payload.Players, model.PlayerEntry{
				PlayerID: playerID,
				Nickname: fmt.Sprintf("Generated %03d", p),
				TeamID:   team,
				Stars:    randomInt(maxPlayerStars + 1),
				Rank:     1 + randomInt(len(sorted)),
			})
		}

		matches = append(matches, payload)
	}
	return matches, expected
}

// shuffledRanks returns the ranks 1..n in random order.
func shuffledRanks(n int) []int {
	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := randomInt(i + 1)
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return ranks
}
