// Package storage persists the match log and statistics store as a pair of
// JSON documents on disk.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/starfest/internal/domain/model"
)

// Default document names inside the data directory.
const (
	defaultMatchesFile = "matches.json"
	defaultStatsFile   = "stats.json"
)

const fileMode = 0o644

// Gateway saves and restores the match log and the per-event statistics as
// two JSON documents. The pair is treated as one logical transaction: both
// documents are marshaled and staged to temp files before either final
// rename happens, so a failure mid-save leaves the previous pair intact.
type Gateway struct {
	dir         string
	matchesFile string
	statsFile   string
	compact     bool
}

// New creates a Gateway rooted at dir, creating the directory if needed.
func New(_ context.Context, dir string, opts ...Option) (*Gateway, error) {
	g := &Gateway{
		dir:         dir,
		matchesFile: defaultMatchesFile,
		statsFile:   defaultStatsFile,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSave, err)
	}
	return g, nil
}

// Save writes the match log and statistics store together. If marshaling or
// staging either document fails, neither final document is touched.
func (g *Gateway) Save(_ context.Context, matchLog []model.MatchRecord, stats map[string]*model.EventStats) error {
	if matchLog == nil {
		matchLog = []model.MatchRecord{}
	}
	if stats == nil {
		stats = map[string]*model.EventStats{}
	}

	matchesRaw, err := g.marshal(matchLog)
	if err != nil {
		return fmt.Errorf("%w: marshal match log: %w", ErrSave, err)
	}
	statsRaw, err := g.marshal(stats)
	if err != nil {
		return fmt.Errorf("%w: marshal stats: %w", ErrSave, err)
	}

	matchesTmp, err := g.stage(g.matchesFile, matchesRaw)
	if err != nil {
		return fmt.Errorf("%w: stage match log: %w", ErrSave, err)
	}
	statsTmp, err := g.stage(g.statsFile, statsRaw)
	if err != nil {
		_ = os.Remove(matchesTmp)
		return fmt.Errorf("%w: stage stats: %w", ErrSave, err)
	}

	if err := os.Rename(matchesTmp, filepath.Join(g.dir, g.matchesFile)); err != nil {
		_ = os.Remove(matchesTmp)
		_ = os.Remove(statsTmp)
		return fmt.Errorf("%w: commit match log: %w", ErrSave, err)
	}
	if err := os.Rename(statsTmp, filepath.Join(g.dir, g.statsFile)); err != nil {
		_ = os.Remove(statsTmp)
		return fmt.Errorf("%w: commit stats: %w", ErrSave, err)
	}
	return nil
}

// Restore reads both documents back. A document that does not exist yet
// yields its empty value; this is the first-run case, not an error.
func (g *Gateway) Restore(_ context.Context) ([]model.MatchRecord, map[string]*model.EventStats, error) {
	matchLog := []model.MatchRecord{}
	if err := g.read(g.matchesFile, &matchLog); err != nil {
		return nil, nil, fmt.Errorf("%w: match log: %w", ErrRestore, err)
	}
	stats := map[string]*model.EventStats{}
	if err := g.read(g.statsFile, &stats); err != nil {
		return nil, nil, fmt.Errorf("%w: stats: %w", ErrRestore, err)
	}
	return matchLog, stats, nil
}

func (g *Gateway) marshal(v any) ([]byte, error) {
	if g.compact {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// stage writes raw to a temp file next to the final document and returns the
// temp path.
func (g *Gateway) stage(name string, raw []byte) (string, error) {
	tmp := filepath.Join(g.dir, name+".tmp")
	if err := os.WriteFile(tmp, raw, fileMode); err != nil {
		return "", err
	}
	return tmp, nil
}

func (g *Gateway) read(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(g.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
