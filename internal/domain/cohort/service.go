package cohort

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/afyalink/afyalink/internal/domain/catalog"
	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

// ErrGenerationInProgress is returned when a regeneration request arrives
// while another one is still running.
var ErrGenerationInProgress = errors.New("cohort: generation already in progress")

// ErrNoDataset is returned by readers before any snapshot exists.
var ErrNoDataset = errors.New("cohort: no dataset loaded")

// Mirror receives a copy of each new snapshot, typically a Postgres bulk
// loader. Mirroring is best effort and never blocks publication.
type Mirror interface {
	MirrorDataset(ctx context.Context, d *Dataset) error
}

// Service owns the live dataset. Regeneration is single-writer: one
// generation runs at a time and the finished snapshot is swapped in
// atomically, so readers always see a complete, consistent snapshot.
type Service struct {
	store    *tablestore.Store
	catalog  *catalog.Service
	defaults GenerationConfig
	mirror   Mirror
	logger   zerolog.Logger

	genMu sync.Mutex

	mu      sync.RWMutex
	current *Dataset
}

func NewService(store *tablestore.Store, cat *catalog.Service, defaults GenerationConfig, mirror Mirror, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		catalog:  cat,
		defaults: defaults,
		mirror:   mirror,
		logger:   logger.With().Str("component", "cohort").Logger(),
	}
}

// Bootstrap loads an existing snapshot from disk, or generates a fresh one
// when no tables have been written yet.
func (s *Service) Bootstrap(ctx context.Context) error {
	if s.store.HasTable(TablePatients) {
		return s.Reload()
	}
	s.logger.Info().Int("patients", s.defaults.NumPatients).Msg("no dataset on disk, generating")
	_, err := s.Regenerate(ctx, s.defaults)
	return err
}

// Regenerate builds a new snapshot, persists it, mirrors it if a mirror is
// configured, and publishes it. Concurrent calls beyond the first fail fast.
func (s *Service) Regenerate(ctx context.Context, cfg GenerationConfig) (Summary, error) {
	if !s.genMu.TryLock() {
		return Summary{}, ErrGenerationInProgress
	}
	defer s.genMu.Unlock()

	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	gen := NewGenerator(cfg, s.catalog.Sites(), s.catalog.Users())
	d, err := gen.Generate()
	if err != nil {
		return Summary{}, err
	}
	if err := d.Save(s.store); err != nil {
		return Summary{}, err
	}

	if s.mirror != nil {
		if err := s.mirror.MirrorDataset(ctx, d); err != nil {
			s.logger.Warn().Err(err).Msg("mirror failed, snapshot still published")
		}
	}

	s.publish(d)
	sum := d.Summary()
	s.logger.Info().
		Int("patients", sum.Patients).
		Int("screenings", sum.Screenings).
		Int("vitals", sum.Vitals).
		Int64("seed", cfg.Seed).
		Msg("dataset regenerated")
	return sum, nil
}

// Reload re-reads the snapshot currently on disk.
func (s *Service) Reload() error {
	d, err := LoadDataset(s.store)
	if err != nil {
		return err
	}
	s.publish(d)
	s.logger.Info().Int("patients", len(d.Patients)).Msg("dataset reloaded from disk")
	return nil
}

func (s *Service) publish(d *Dataset) {
	s.mu.Lock()
	s.current = d
	s.mu.Unlock()
}

// Dataset returns the live snapshot. The snapshot is immutable after
// publication; callers must not modify it.
func (s *Service) Dataset() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoDataset
	}
	return s.current, nil
}

// Defaults returns the configured baseline generation parameters.
func (s *Service) Defaults() GenerationConfig {
	return s.defaults
}
