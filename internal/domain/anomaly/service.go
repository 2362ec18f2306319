package anomaly

import (
	"sync"

	"github.com/afyalink/afyalink/internal/domain/cohort"
)

// Service runs detection against the live dataset and caches the result
// per snapshot. Detection is pure, so the cache is keyed on snapshot
// identity and never invalidated in place.
type Service struct {
	cohort   *cohort.Service
	detector *Detector

	mu     sync.Mutex
	cached *cohort.Dataset
	result []Anomaly
}

func NewService(cohortSvc *cohort.Service, detector *Detector) *Service {
	return &Service{cohort: cohortSvc, detector: detector}
}

// Filter narrows the anomaly listing.
type Filter struct {
	Severity  int    // minimum severity, 0 = no filter
	AlertType string // exact alert type, "" = no filter
	Limit     int    // 0 = no limit
}

// Anomalies returns the ranked alerts for the current snapshot.
func (s *Service) Anomalies(f Filter) ([]Anomaly, error) {
	d, err := s.cohort.Dataset()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.cached != d {
		s.result = s.detector.Detect(d)
		s.cached = d
	}
	all := s.result
	s.mu.Unlock()

	out := make([]Anomaly, 0, len(all))
	for _, a := range all {
		if f.Severity > 0 && a.Severity < f.Severity {
			continue
		}
		if f.AlertType != "" && a.AlertType != f.AlertType {
			continue
		}
		out = append(out, a)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// Summary aggregates alert counts by type and severity.
type SummaryReport struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"by_type"`
	BySeverity map[int]int    `json:"by_severity"`
}

func (s *Service) Summary() (SummaryReport, error) {
	all, err := s.Anomalies(Filter{})
	if err != nil {
		return SummaryReport{}, err
	}
	rep := SummaryReport{
		Total:      len(all),
		ByType:     make(map[string]int),
		BySeverity: make(map[int]int),
	}
	for _, a := range all {
		rep.ByType[a.AlertType]++
		rep.BySeverity[a.Severity]++
	}
	return rep, nil
}
