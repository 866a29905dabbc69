package matchgen

import (
	"fmt"

	"github.com/okian/starfest/internal/domain/types"
)

// verify checks that the service's aggregates moved by exactly the totals
// the generated matches should have produced. It compares deltas so runs can
// be repeated against a store that already has history.
func verify(before, after types.EventSnapshot, expected *Expected) error {
	for teamID, wantStars := range expected.TeamStars {
		prev, cur := before.Stats.Teams[teamID], after.Stats.Teams[teamID]
		if cur == nil {
			return fmt.Errorf("verification: team %q missing from final stats", teamID)
		}
		var prevStars, prevPoints, prevWins int
		if prev != nil {
			prevStars, prevPoints, prevWins = prev.TotalStars, prev.Points, prev.MatchesWon
		}
		if got := cur.TotalStars - prevStars; got != wantStars {
			return fmt.Errorf("verification: team %q stars delta = %d, want %d", teamID, got, wantStars)
		}
		if got, want := cur.Points-prevPoints, expected.TeamPoints[teamID]; got != want {
			return fmt.Errorf("verification: team %q points delta = %d, want %d", teamID, got, want)
		}
		if got, want := cur.MatchesWon-prevWins, expected.TeamWins[teamID]; got != want {
			return fmt.Errorf("verification: team %q wins delta = %d, want %d", teamID, got, want)
		}
	}
	return nil
}
