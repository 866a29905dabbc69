// Package matchgen generates randomized match reports, submits them to a
// running instance, and verifies the aggregated totals line up with what it
// sent.
package matchgen

import "time"

// Default generator settings.
const (
	defaultBaseURL         = "http://localhost:9080"
	defaultNumMatches      = 25
	defaultPlayersPerMatch = 4
	defaultTimeout         = 10 * time.Second
)

// Config controls one generator run.
type Config struct {
	// BaseURL of the running service.
	BaseURL string

	// NumMatches to generate and submit.
	NumMatches int

	// PlayersPerMatch reported in each match.
	PlayersPerMatch int

	// Timeout for each HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         defaultBaseURL,
		NumMatches:      defaultNumMatches,
		PlayersPerMatch: defaultPlayersPerMatch,
		Timeout:         defaultTimeout,
	}
}
