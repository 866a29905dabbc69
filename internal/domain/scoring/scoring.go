// Package scoring defines the rank-based rules used when folding a match
// into cumulative statistics.
package scoring

// Points awarded per placement in team mode.
const (
	pointsFirst  = 3
	pointsSecond = 2
	pointsThird  = 1
)

// topThreeCutoff is the worst rank that still counts as a podium finish.
const topThreeCutoff = 3

// Points returns the team points awarded for a 1-based rank. Ranks outside
// the podium award nothing.
func Points(rank int) int {
	switch rank {
	case 1:
		return pointsFirst
	case 2:
		return pointsSecond
	case 3:
		return pointsThird
	default:
		return 0
	}
}

// IsWin reports whether a rank counts as a match win.
func IsWin(rank int) bool {
	return rank == 1
}

// IsTopThree reports whether a rank counts as a top-three finish.
func IsTopThree(rank int) bool {
	return rank >= 1 && rank <= topThreeCutoff
}
