package matchgen

import (
	"context"
	"fmt"

	"github.com/okian/starfest/pkg/logger"
)

// Run executes one generator run: fetch the active event, submit the
// generated matches, then re-fetch and verify the deltas the run produced.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get()
	c := newClient(cfg)

	before, err := c.currentEvent(ctx)
	if err != nil {
		return fmt.Errorf("fetch active event: %w", err)
	}
	teamIDs := make([]string, 0, len(before.Info.Teams))
	for id := range before.Info.Teams {
		teamIDs = append(teamIDs, id)
	}
	if len(teamIDs) == 0 {
		return fmt.Errorf("active event %q has no teams", before.Info.ID)
	}
	log.Info(ctx, "generating matches",
		logger.String("event", before.Info.ID),
		logger.Int("teams", len(teamIDs)),
		logger.Int("matches", cfg.NumMatches),
	)

	matches, expected := generateMatches(cfg, teamIDs)
	for i, payload := range matches {
		if err := c.submitMatch(ctx, payload); err != nil {
			return fmt.Errorf("submit match %d/%d: %w", i+1, len(matches), err)
		}
	}

	after, err := c.currentEvent(ctx)
	if err != nil {
		return fmt.Errorf("fetch final stats: %w", err)
	}
	if err := verify(before, after, expected); err != nil {
		return err
	}
	log.Info(ctx, "all generated totals verified", logger.Int("matches", len(matches)))
	return nil
}
