package monitor

import (
	"math"
	"time"

	"github.com/afyalink/afyalink/internal/domain/cohort"
)

// Follow-up performance targets. Each metric below MinPerformanceRatio
// counts as a violation.
const (
	MinPerformanceRatio = 0.5
	ControlledSystolic  = 140.0
	ControlledDiastolic = 90.0
)

const (
	metricsHistoryLimit = 90
	metricsAlertLimit   = 30
)

// Metrics captures one follow-up performance observation, all values in
// percent.
type Metrics struct {
	PercentNewDiagnoses float64   `json:"percent_new_diagnoses"`
	PercentBPFollowup   float64   `json:"percent_bp_followup"`
	PercentBGFollowup   float64   `json:"percent_bg_followup"`
	PercentBPControlled float64   `json:"percent_bp_controlled"`
	PerformanceDeclined bool      `json:"performance_declined"`
	Timestamp           time.Time `json:"timestamp"`
}

// MetricsAlert records a violation event with the metric deltas that
// triggered it.
type MetricsAlert struct {
	Timestamp time.Time          `json:"timestamp"`
	Metrics   Metrics            `json:"metrics"`
	Changes   map[string]float64 `json:"changes"`
}

// MetricsHistory holds the trailing observations and violation events.
type MetricsHistory struct {
	Metrics []Metrics      `json:"metrics"`
	Alerts  []MetricsAlert `json:"alerts"`
}

// MetricsReport is the full result of one follow-up check.
type MetricsReport struct {
	Current  Metrics            `json:"current"`
	Previous Metrics            `json:"previous"`
	Changes  map[string]float64 `json:"changes"`
	History  MetricsHistory     `json:"history"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ratioPercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

// computeMetrics derives the follow-up performance metrics from the
// dataset. Tracks are keyed by patient_track_id. An empty denominator
// counts as a violation so a hollow dataset cannot read as healthy.
func computeMetrics(ds *cohort.Dataset, now time.Time) Metrics {
	diagnosed := make(map[string]bool)
	newlyDiagnosed := make(map[string]bool)
	for _, d := range ds.Diagnoses {
		diagnosed[d.PatientTrackID] = true
		if d.DiabetesPatientType == "Newly diagnosed" || d.HTNPatientType == "Newly diagnosed" {
			newlyDiagnosed[d.PatientTrackID] = true
		}
	}

	bpCounts := make(map[string]int)
	type bpSum struct {
		systolic  float64
		diastolic float64
		n         int
	}
	bpSums := make(map[string]*bpSum)
	for _, l := range ds.BPLogs {
		bpCounts[l.PatientTrackID]++
		s, ok := bpSums[l.PatientTrackID]
		if !ok {
			s = &bpSum{}
			bpSums[l.PatientTrackID] = s
		}
		s.systolic += float64(l.AvgSystolic)
		s.diastolic += float64(l.AvgDiastolic)
		s.n++
	}
	bpFollowup := 0
	bpControlled := 0
	for track, count := range bpCounts {
		if count > 1 {
			bpFollowup++
		}
		s := bpSums[track]
		if s.systolic/float64(s.n) < ControlledSystolic && s.diastolic/float64(s.n) < ControlledDiastolic {
			bpControlled++
		}
	}

	bgCounts := make(map[string]int)
	for _, l := range ds.GlucoseLogs {
		bgCounts[l.PatientTrackID]++
	}
	bgFollowup := 0
	for _, count := range bgCounts {
		if count > 1 {
			bgFollowup++
		}
	}

	totalDiagnosed := len(diagnosed)
	bpPatients := len(bpCounts)
	bgPatients := len(bgCounts)

	violation := func(part, total int) bool {
		if total == 0 {
			return true
		}
		return float64(part)/float64(total) < MinPerformanceRatio
	}

	return Metrics{
		PercentNewDiagnoses: ratioPercent(len(newlyDiagnosed), totalDiagnosed),
		PercentBPFollowup:   ratioPercent(bpFollowup, bpPatients),
		PercentBGFollowup:   ratioPercent(bgFollowup, bgPatients),
		PercentBPControlled: ratioPercent(bpControlled, bpPatients),
		PerformanceDeclined: violation(len(newlyDiagnosed), totalDiagnosed) ||
			violation(bpFollowup, bpPatients) ||
			violation(bgFollowup, bgPatients) ||
			violation(bpControlled, bpPatients),
		Timestamp: now,
	}
}

func metricChanges(previous, current Metrics) map[string]float64 {
	return map[string]float64{
		"new_diagnoses": round2(current.PercentNewDiagnoses - previous.PercentNewDiagnoses),
		"bp_followup":   round2(current.PercentBPFollowup - previous.PercentBPFollowup),
		"bg_followup":   round2(current.PercentBGFollowup - previous.PercentBGFollowup),
		"bp_controlled": round2(current.PercentBPControlled - previous.PercentBPControlled),
	}
}

// record appends the observation, logs a violation alert when the run
// declined, and trims both series to their retention windows.
func (h *MetricsHistory) record(previous, current Metrics) {
	h.Metrics = append(h.Metrics, current)
	if current.PerformanceDeclined {
		h.Alerts = append(h.Alerts, MetricsAlert{
			Timestamp: current.Timestamp,
			Metrics:   current,
			Changes:   metricChanges(previous, current),
		})
	}
	if len(h.Metrics) > metricsHistoryLimit {
		h.Metrics = h.Metrics[len(h.Metrics)-metricsHistoryLimit:]
	}
	if len(h.Alerts) > metricsAlertLimit {
		h.Alerts = h.Alerts[len(h.Alerts)-metricsAlertLimit:]
	}
}
