package monitor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyalink/afyalink/internal/domain/catalog"
	"github.com/afyalink/afyalink/internal/domain/cohort"
	"github.com/afyalink/afyalink/internal/platform/notification"
	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

// Recipients lists where monitor alerts are dispatched.
type Recipients struct {
	SMS   []string
	Email []string
}

// Service runs the activity and follow-up monitors and dispatches alerts
// through the notification manager.
type Service struct {
	store      *tablestore.Store
	catalog    *catalog.Service
	cohort     *cohort.Service
	notifier   *notification.Manager
	recipients Recipients
	logger     zerolog.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewService(store *tablestore.Store, cat *catalog.Service, coh *cohort.Service, notifier *notification.Manager, recipients Recipients, logger zerolog.Logger) *Service {
	return &Service{
		store:      store,
		catalog:    cat,
		cohort:     coh,
		notifier:   notifier,
		recipients: recipients,
		logger:     logger.With().Str("component", "monitor").Logger(),
		now:        time.Now,
	}
}

// CheckActivity compares current active site and user counts against the
// previous run, persists the new baseline and history, and dispatches
// decline alerts. The first run only records a baseline.
func (s *Service) CheckActivity(ctx context.Context) (ActivityReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sites, users := s.catalog.ActiveCounts()
	current := ActivityCounts{ActiveSites: sites, ActiveUsers: users}

	var previous ActivityCounts
	if err := s.store.ReadState(stateActivityCounts, &previous); err != nil && !errors.Is(err, tablestore.ErrNotFound) {
		return ActivityReport{}, fmt.Errorf("read activity state: %w", err)
	}

	var history ActivityHistory
	if err := s.store.ReadState(stateActivityHistory, &history); err != nil && !errors.Is(err, tablestore.ErrNotFound) {
		return ActivityReport{}, fmt.Errorf("read activity history: %w", err)
	}

	checkedAt := s.now().UTC()
	report := ActivityReport{
		Current:            current,
		Previous:           previous,
		SitesPercentChange: percentChange(previous.ActiveSites, current.ActiveSites),
		UsersPercentChange: percentChange(previous.ActiveUsers, current.ActiveUsers),
		LastChecked:        checkedAt,
	}
	report.SiteDeclined = declined(report.SitesPercentChange)
	report.UserDeclined = declined(report.UsersPercentChange)

	history.record(checkedAt.Format("2006-01-02"), current)
	report.History = history

	if err := s.store.WriteState(stateActivityCounts, current); err != nil {
		return ActivityReport{}, fmt.Errorf("write activity state: %w", err)
	}
	if err := s.store.WriteState(stateActivityHistory, history); err != nil {
		return ActivityReport{}, fmt.Errorf("write activity history: %w", err)
	}

	if report.SiteDeclined {
		s.dispatchActivityAlert(ctx, "Site", report.SitesPercentChange, current.ActiveSites, previous.ActiveSites)
	}
	if report.UserDeclined {
		s.dispatchActivityAlert(ctx, "User", report.UsersPercentChange, current.ActiveUsers, previous.ActiveUsers)
	}

	s.logger.Info().
		Int("active_sites", current.ActiveSites).
		Int("active_users", current.ActiveUsers).
		Bool("site_declined", report.SiteDeclined).
		Bool("user_declined", report.UserDeclined).
		Msg("activity check complete")
	return report, nil
}

func severityFor(change float64) string {
	if change <= HighSeverityThreshold {
		return "high"
	}
	return "medium"
}

// dispatchActivityAlert sends the decline over every configured channel.
// Delivery failures are logged, never returned: a dead SMS gateway must
// not fail the monitoring run.
func (s *Service) dispatchActivityAlert(ctx context.Context, area string, change float64, current, previous int) {
	severity := severityFor(change)
	data := map[string]string{
		"area":     area,
		"severity": severityUpper(severity),
		"percent":  strconv.FormatFloat(-change, 'f', -1, 64),
		"current":  strconv.Itoa(current),
		"previous": strconv.Itoa(previous),
	}

	for _, to := range s.recipients.SMS {
		if _, err := s.notifier.SendFromTemplate(ctx, "activity-decline-sms", to, data); err != nil {
			s.logger.Warn().Err(err).Str("to", to).Msg("sms alert failed")
		}
	}
	for _, to := range s.recipients.Email {
		if _, err := s.notifier.SendFromTemplate(ctx, "activity-decline-email", to, data); err != nil {
			s.logger.Warn().Err(err).Str("to", to).Msg("email alert failed")
		}
	}
}

func severityUpper(severity string) string {
	if severity == "high" {
		return "HIGH"
	}
	return "MEDIUM"
}

// MonitoringMetrics computes the follow-up performance metrics from the
// current dataset, rolls state forward, and dispatches an alert when
// performance declined.
func (s *Service) MonitoringMetrics(ctx context.Context) (MetricsReport, error) {
	ds, err := s.cohort.Dataset()
	if err != nil {
		return MetricsReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := computeMetrics(ds, s.now().UTC())

	var previous Metrics
	if err := s.store.ReadState(statePreviousMetrics, &previous); err != nil && !errors.Is(err, tablestore.ErrNotFound) {
		return MetricsReport{}, fmt.Errorf("read previous metrics: %w", err)
	}

	var history MetricsHistory
	if err := s.store.ReadState(stateMetricsHistory, &history); err != nil && !errors.Is(err, tablestore.ErrNotFound) {
		return MetricsReport{}, fmt.Errorf("read metrics history: %w", err)
	}

	history.record(previous, current)

	if err := s.store.WriteState(statePreviousMetrics, current); err != nil {
		return MetricsReport{}, fmt.Errorf("write previous metrics: %w", err)
	}
	if err := s.store.WriteState(stateMetricsHistory, history); err != nil {
		return MetricsReport{}, fmt.Errorf("write metrics history: %w", err)
	}

	if current.PerformanceDeclined {
		s.dispatchMetricsAlert(ctx, current)
	}

	s.logger.Info().
		Float64("new_diagnoses", current.PercentNewDiagnoses).
		Float64("bp_followup", current.PercentBPFollowup).
		Float64("bg_followup", current.PercentBGFollowup).
		Float64("bp_controlled", current.PercentBPControlled).
		Bool("declined", current.PerformanceDeclined).
		Msg("follow-up metrics computed")

	return MetricsReport{
		Current:  current,
		Previous: previous,
		Changes:  metricChanges(previous, current),
		History:  history,
	}, nil
}

func (s *Service) dispatchMetricsAlert(ctx context.Context, m Metrics) {
	data := map[string]string{
		"new_diagnoses": strconv.FormatFloat(m.PercentNewDiagnoses, 'f', -1, 64),
		"bp_followup":   strconv.FormatFloat(m.PercentBPFollowup, 'f', -1, 64),
		"bg_followup":   strconv.FormatFloat(m.PercentBGFollowup, 'f', -1, 64),
		"bp_controlled": strconv.FormatFloat(m.PercentBPControlled, 'f', -1, 64),
	}
	for _, to := range s.recipients.Email {
		if _, err := s.notifier.SendFromTemplate(ctx, "performance-decline-email", to, data); err != nil {
			s.logger.Warn().Err(err).Str("to", to).Msg("performance alert failed")
		}
	}
}

// RunChecks executes both monitors, for the interval scheduler. Each
// monitor's failure is logged without blocking the other.
func (s *Service) RunChecks(ctx context.Context) {
	if _, err := s.CheckActivity(ctx); err != nil {
		s.logger.Error().Err(err).Msg("activity check failed")
	}
	if _, err := s.MonitoringMetrics(ctx); err != nil {
		s.logger.Error().Err(err).Msg("follow-up check failed")
	}
}
