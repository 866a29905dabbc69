package matchgen

import (
	"flag"
)

// ParseFlags builds a Config from command-line flags.
func ParseFlags(args []string) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("gen-matches", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the running service")
	fs.IntVar(&cfg.NumMatches, "matches", cfg.NumMatches, "number of matches to generate")
	fs.IntVar(&cfg.PlayersPerMatch, "players", cfg.PlayersPerMatch, "players reported per match")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.NumMatches < 1 {
		cfg.NumMatches = 1
	}
	if cfg.PlayersPerMatch < 1 {
		cfg.PlayersPerMatch = 1
	}
	return cfg, nil
}
