// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/starfest/internal/adapters/repository"
	"github.com/okian/starfest/internal/adapters/storage"
	"github.com/okian/starfest/internal/catalog"
	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/types"
	"github.com/okian/starfest/pkg/logger"
	"github.com/okian/starfest/pkg/metrics"
)

// Service owns the mutable statistics state and the match log. Ingestion is
// a mutually exclusive critical section: the fold and the paired save
// complete before the next match is admitted, so concurrent reports never
// interleave their read-modify-write sequences. Queries go straight to the
// store under its read lock.
type Service struct {
	mu sync.Mutex // serializes ingestion (store mutation + log append + save)

	catalog *catalog.Catalog
	store   repository.Store
	gateway *storage.Gateway

	matchLog []model.MatchRecord

	dataDir string
	started bool

	now func() time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the event catalog. Required before Start.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithDataDir sets the persistence directory.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithStore sets a custom statistics store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithGateway sets a custom persistence gateway.
func WithGateway(g *storage.Gateway) Option {
	return func(s *Service) {
		if g != nil {
			s.gateway = g
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the timestamp source for match records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir: "data",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start restores persisted state and initializes the statistics store for
// the active event. Restoration precedes any ingestion; a catalog with no
// active event still starts.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.catalog == nil {
		return ErrMissingCatalog
	}

	if s.gateway == nil {
		g, err := storage.New(ctx, s.dataDir)
		if err != nil {
			return err
		}
		s.gateway = g
	}
	if s.store == nil {
		s.store = repository.NewMemStore(ctx)
	}

	matchLog, prior, err := s.gateway.Restore(ctx)
	if err != nil {
		return err
	}
	s.matchLog = matchLog
	s.store.Load(ctx, prior)

	if active, ok := s.catalog.ActiveEvent(); ok {
		s.store.InitEvent(ctx, active)
		s.logger.Info(ctx, "statistics store ready",
			logger.String("event", active.ID),
			logger.Int("teams", len(active.Teams)),
			logger.Int("restoredMatches", len(s.matchLog)),
		)
	} else {
		s.logger.Warn(ctx, "no active event; match submission disabled")
	}

	s.started = true
	metrics.UpdateMatchLogSize(len(s.matchLog))
	return nil
}

// Stop persists the final state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	if err := s.gateway.Save(ctx, s.matchLog, s.store.All(ctx)); err != nil {
		s.logger.Error(ctx, "final save failed; recent matches may not be durable", logger.Error(err))
	}
	s.started = false
	s.logger.Info(ctx, "statistics service stopped")
}

// SubmitMatch validates and folds one reported match into the active
// event's statistics.
//
// Order matters: validation runs before any mutation so a malformed report
// is all-or-nothing; the match record is appended once the report is
// admitted, as the write-ahead trace that a match was reported; the fold and
// the paired save then complete inside the critical section.
func (s *Service) SubmitMatch(ctx context.Context, payload model.MatchPayload) (types.EventSnapshot, error) {
	start := time.Now()

	active, ok := s.catalog.ActiveEvent()
	if !ok {
		metrics.RecordMatchRejected("no_active_event")
		return types.EventSnapshot{}, ErrNoActiveEvent
	}
	if err := payload.Validate(); err != nil {
		metrics.RecordMatchRejected("invalid_payload")
		return types.EventSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.MatchRecord{
		ID:         uuid.NewString(),
		EventID:    active.ID,
		ReportedAt: s.now().UTC(),
		Payload:    payload,
	}
	s.matchLog = append(s.matchLog, record)

	if err := s.store.ApplyMatch(ctx, active.ID, payload); err != nil {
		// Only possible if the active event was never initialized; treat as
		// a no-active-event condition for the caller.
		metrics.RecordMatchRejected("uninitialized_event")
		return types.EventSnapshot{}, fmt.Errorf("%w: %w", ErrNoActiveEvent, err)
	}

	saveStart := time.Now()
	saveErr := s.gateway.Save(ctx, s.matchLog, s.store.All(ctx))
	metrics.RecordSaveDuration(float64(time.Since(saveStart).Milliseconds()))

	snapshot, err := s.store.Snapshot(ctx, active.ID)
	if err != nil {
		return types.EventSnapshot{}, err
	}

	metrics.RecordMatchIngested()
	metrics.RecordIngestLatency(float64(time.Since(start).Milliseconds()))
	metrics.UpdateMatchLogSize(len(s.matchLog))
	metrics.UpdateTrackedTeams(len(snapshot.Teams))
	metrics.UpdateTrackedPlayers(len(snapshot.Players))

	if saveErr != nil {
		// The in-memory store stays authoritative; warn operators loudly
		// and surface the storage failure to the caller.
		metrics.RecordSaveError()
		s.logger.Error(ctx, "persistence save failed; durability at risk until next successful save",
			logger.String("match", record.ID),
			logger.Error(saveErr),
		)
		return types.EventSnapshot{}, saveErr
	}

	s.logger.Debug(ctx, "match ingested",
		logger.String("match", record.ID),
		logger.String("event", active.ID),
		logger.Int("teams", len(payload.Teams)),
		logger.Int("players", len(payload.Players)),
	)
	return types.EventSnapshot{Info: active, Stats: snapshot}, nil
}

// CurrentEvent returns the active event's info plus its aggregates.
func (s *Service) CurrentEvent(ctx context.Context) (types.EventSnapshot, error) {
	active, ok := s.catalog.ActiveEvent()
	if !ok {
		return types.EventSnapshot{}, ErrNoActiveEvent
	}
	stats, err := s.store.Snapshot(ctx, active.ID)
	if err != nil {
		return types.EventSnapshot{}, err
	}
	return types.EventSnapshot{Info: active, Stats: stats}, nil
}

// Player returns the per-team statistics for one player of the active event.
func (s *Service) Player(ctx context.Context, playerID string) (types.PlayerSnapshot, error) {
	active, ok := s.catalog.ActiveEvent()
	if !ok {
		return types.PlayerSnapshot{}, ErrNoActiveEvent
	}
	return s.store.Player(ctx, active.ID, playerID)
}

// Team returns one team's aggregates plus the players who played for it.
func (s *Service) Team(ctx context.Context, teamID string) (types.TeamSnapshot, error) {
	active, ok := s.catalog.ActiveEvent()
	if !ok {
		return types.TeamSnapshot{}, ErrNoActiveEvent
	}
	return s.store.Team(ctx, active.ID, teamID)
}

// MatchLogLen returns the current match log length. Used for monitoring.
func (s *Service) MatchLogLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matchLog)
}
