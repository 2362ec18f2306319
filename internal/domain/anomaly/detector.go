package anomaly

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyalink/afyalink/internal/domain/cohort"
)

// Detector classifies a dataset snapshot into ranked anomalies. Detection
// is pure: the same snapshot and thresholds always produce the same
// alerts.
type Detector struct {
	thresholds Thresholds
	logger     zerolog.Logger
}

func NewDetector(t Thresholds, logger zerolog.Logger) *Detector {
	return &Detector{
		thresholds: t,
		logger:     logger.With().Str("component", "anomaly").Logger(),
	}
}

// Detect runs every table detector and merges the results sorted by
// severity descending, then timestamp ascending. A detector that fails
// is logged and skipped so one bad table cannot suppress the others.
func (d *Detector) Detect(ds *cohort.Dataset) []Anomaly {
	names := patientNames(ds.Patients)

	detectors := []struct {
		name string
		run  func() []Anomaly
	}{
		{"screenings", func() []Anomaly { return d.detectScreenings(ds.Screenings, names) }},
		{"bp_logs", func() []Anomaly { return d.detectBPLogs(ds.BPLogs, names) }},
		{"glucose_logs", func() []Anomaly { return d.detectGlucoseLogs(ds.GlucoseLogs, names) }},
		{"patient_diagnosis", func() []Anomaly { return d.detectDiagnoses(ds.Diagnoses, names) }},
		{"patient_lifestyle", func() []Anomaly { return d.detectLifestyles(ds.Lifestyles, names) }},
		{"patient_medical_compliance", func() []Anomaly { return d.detectCompliances(ds.Compliances, names) }},
		{"patient_visits", func() []Anomaly { return d.detectVisits(ds.Visits, names) }},
		{"patient_medical_reviews", func() []Anomaly { return d.detectReviews(ds.Reviews, names) }},
	}

	var all []Anomaly
	for _, det := range detectors {
		out, err := runIsolated(det.run)
		if err != nil {
			d.logger.Error().Err(err).Str("detector", det.name).Msg("detector failed, skipping")
			continue
		}
		all = append(all, out...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return all[i].Severity > all[j].Severity
		}
		return all[i].Timestamp.Before(all[j].Timestamp)
	})
	return all
}

// runIsolated converts a detector panic into an error so the remaining
// detectors still report.
func runIsolated(run func() []Anomaly) (out []Anomaly, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("detector panic: %v", r)
		}
	}()
	return run(), nil
}

func patientNames(patients []cohort.Patient) map[string]string {
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		if _, ok := names[p.PatientID]; !ok {
			names[p.PatientID] = strings.TrimSpace(p.FirstName + " " + p.LastName)
		}
	}
	return names
}

func (d *Detector) newAnomaly(patientID, alertType, source, recordID string, ts time.Time, names map[string]string) Anomaly {
	return Anomaly{
		PatientID:   patientID,
		PatientName: names[patientID],
		AlertType:   alertType,
		Severity:    SeverityScore(alertType),
		Description: Description(alertType),
		SourceTable: source,
		RecordID:    recordID,
		Timestamp:   ts,
	}
}

func (d *Detector) detectScreenings(screenings []cohort.Screening, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, s := range screenings {
		if alert, ok := classify(screeningRules, s, d.thresholds); ok {
			out = append(out, d.newAnomaly(s.PatientID, alert, "screenings", s.ScreeningID, s.CreatedAt, names))
		}
	}
	return out
}

func (d *Detector) detectBPLogs(logs []cohort.BPLog, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, l := range logs {
		if alert, ok := classify(bpRules, l, d.thresholds); ok {
			out = append(out, d.newAnomaly(l.PatientID, alert, "bp_logs", l.BPLogID, l.CreatedAt, names))
		}
	}
	return out
}

func (d *Detector) detectGlucoseLogs(logs []cohort.GlucoseLog, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, l := range logs {
		if alert, ok := classify(glucoseRules, l, d.thresholds); ok {
			out = append(out, d.newAnomaly(l.PatientID, alert, "glucose_logs", l.GlucoseLogID, l.GlucoseDateTime, names))
		}
	}
	return out
}

func (d *Detector) detectDiagnoses(diagnoses []cohort.Diagnosis, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, diag := range diagnoses {
		// Diagnosis rules are independent findings, not a cascade: an
		// undiagnosed high-risk row and an uncontrolled row are distinct
		// alerts.
		for _, r := range diagnosisRules {
			if r.match(diag, d.thresholds) {
				out = append(out, d.newAnomaly(diag.PatientID, r.alertType, "patient_diagnosis", diag.DiagnosisID, diag.CreatedAt, names))
			}
		}
	}
	return out
}

func (d *Detector) detectLifestyles(lifestyles []cohort.Lifestyle, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, l := range lifestyles {
		if alert, ok := classify(lifestyleRules, l, d.thresholds); ok {
			out = append(out, d.newAnomaly(l.PatientID, alert, "patient_lifestyle", l.LifestyleRecordID, l.CreatedAt, names))
		}
	}
	return out
}

func (d *Detector) detectCompliances(compliances []cohort.Compliance, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, c := range compliances {
		if alert, ok := classify(complianceRules, c, d.thresholds); ok {
			out = append(out, d.newAnomaly(c.PatientID, alert, "patient_medical_compliance", c.ComplianceRecordID, c.CreatedAt, names))
		}
	}
	return out
}

// detectVisits flags patients with more visits than the frequent-visit
// threshold. The alert timestamp is the latest visit so ordering stays
// deterministic for a given snapshot.
func (d *Detector) detectVisits(visits []cohort.Visit, names map[string]string) []Anomaly {
	counts := make(map[string]int)
	latest := make(map[string]time.Time)
	var order []string
	for _, v := range visits {
		if counts[v.PatientID] == 0 {
			order = append(order, v.PatientID)
		}
		counts[v.PatientID]++
		if v.VisitDate.After(latest[v.PatientID]) {
			latest[v.PatientID] = v.VisitDate
		}
	}

	var out []Anomaly
	for _, patientID := range order {
		if counts[patientID] > FrequentVisitThreshold {
			out = append(out, d.newAnomaly(patientID, AlertFrequentVisitor, "patient_visits", "", latest[patientID], names))
		}
	}
	return out
}

func (d *Detector) detectReviews(reviews []cohort.MedicalReview, names map[string]string) []Anomaly {
	var out []Anomaly
	for _, m := range reviews {
		if alert, ok := classify(reviewRules, m, d.thresholds); ok {
			out = append(out, d.newAnomaly(m.PatientID, alert, "patient_medical_reviews", m.ReviewID, m.CreatedAt, names))
		}
	}
	return out
}
