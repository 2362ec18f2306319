package anomaly

import (
	"strings"

	"github.com/afyalink/afyalink/internal/domain/cohort"
)

// rule pairs a predicate with the alert it raises. Each detector owns an
// ordered rule list evaluated first-match-wins, so the most severe
// condition on a record names the alert.
type rule[T any] struct {
	alertType string
	match     func(T, Thresholds) bool
}

func classify[T any](rules []rule[T], v T, t Thresholds) (string, bool) {
	for _, r := range rules {
		if r.match(v, t) {
			return r.alertType, true
		}
	}
	return "", false
}

var screeningRules = []rule[cohort.Screening]{
	{AlertSevereHyperglycemia, func(s cohort.Screening, t Thresholds) bool {
		return s.GlucoseValue > t.Glucose.CriticalHigh
	}},
	{AlertHypertensiveCrisis, func(s cohort.Screening, t Thresholds) bool {
		return float64(s.AvgSystolic) > t.Systolic.CriticalHigh
	}},
	{AlertHypertensiveCrisis, func(s cohort.Screening, t Thresholds) bool {
		return float64(s.AvgDiastolic) > t.Diastolic.CriticalHigh
	}},
	{AlertMentalHealthConcern, func(s cohort.Screening, _ Thresholds) bool {
		return s.PHQ4RiskLevel == "Moderate" || s.PHQ4RiskLevel == "Severe"
	}},
	{AlertHighCVDRisk, func(s cohort.Screening, _ Thresholds) bool {
		return s.CVDRiskLevel == "High"
	}},
	{AlertSevereObesity, func(s cohort.Screening, t Thresholds) bool {
		return s.BMI > t.BMI.CriticalHigh
	}},
	{AlertSevereUnderweight, func(s cohort.Screening, t Thresholds) bool {
		return s.BMI < t.BMI.CriticalLow
	}},
	{AlertTachycardia, func(s cohort.Screening, t Thresholds) bool {
		return float64(s.AvgPulse) > t.Pulse.CriticalHigh
	}},
	{AlertBradycardia, func(s cohort.Screening, t Thresholds) bool {
		return float64(s.AvgPulse) < t.Pulse.CriticalLow
	}},
}

var bpRules = []rule[cohort.BPLog]{
	{AlertHypertensiveCrisis, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgSystolic) > t.Systolic.CriticalHigh
	}},
	{AlertHypertensiveCrisis, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgDiastolic) > t.Diastolic.CriticalHigh
	}},
	{AlertHypotensiveCrisis, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgSystolic) < t.Systolic.CriticalLow
	}},
	{AlertHypotensiveCrisis, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgDiastolic) < t.Diastolic.CriticalLow
	}},
	{AlertTachycardia, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgPulse) > t.Pulse.CriticalHigh
	}},
	{AlertBradycardia, func(b cohort.BPLog, t Thresholds) bool {
		return float64(b.AvgPulse) < t.Pulse.CriticalLow
	}},
	{AlertSevereObesity, func(b cohort.BPLog, t Thresholds) bool {
		return b.BMI > t.BMI.CriticalHigh
	}},
	{AlertSevereUnderweight, func(b cohort.BPLog, t Thresholds) bool {
		return b.BMI < t.BMI.CriticalLow
	}},
}

var glucoseRules = []rule[cohort.GlucoseLog]{
	{AlertSevereHyperglycemia, func(g cohort.GlucoseLog, t Thresholds) bool {
		return g.GlucoseValue > t.Glucose.CriticalHigh
	}},
	{AlertHypoglycemia, func(g cohort.GlucoseLog, t Thresholds) bool {
		return g.GlucoseValue < t.Glucose.CriticalLow
	}},
	{AlertPoorGlycemicControl, func(g cohort.GlucoseLog, t Thresholds) bool {
		return g.HbA1c > t.HbA1c.CriticalHigh
	}},
	{AlertElevatedFastingGlucose, func(g cohort.GlucoseLog, t Thresholds) bool {
		return g.GlucoseType == "fasting" && g.GlucoseValue > t.Glucose.WarningHigh
	}},
	{AlertElevatedRandomGlucose, func(g cohort.GlucoseLog, t Thresholds) bool {
		return g.GlucoseType == "random" && g.GlucoseValue > t.ElevatedRandomGlucose()
	}},
}

var diagnosisRules = []rule[cohort.Diagnosis]{
	{AlertUndiagnosedHighRisk, func(d cohort.Diagnosis, _ Thresholds) bool {
		return !d.IsDiabetesDiagnosis && !d.IsHTNDiagnosis &&
			(d.DiabetesDiagnosis != nil || d.HTNPatientType != "")
	}},
	{AlertUncontrolledCondition, func(d cohort.Diagnosis, _ Thresholds) bool {
		return (d.DiabetesControlType != nil && *d.DiabetesControlType == "Uncontrolled") ||
			d.HTNPatientType == "Uncontrolled"
	}},
}

// highRiskBehaviors are the lifestyle questions whose affirmative answer
// raises a lifestyle alert.
var highRiskBehaviors = map[string]bool{
	"Smoking":         true,
	"Alcohol":         true,
	"Sedentary":       true,
	"High salt diet":  true,
	"High sugar diet": true,
}

var lifestyleRules = []rule[cohort.Lifestyle]{
	{AlertHighRiskLifestyle, func(l cohort.Lifestyle, _ Thresholds) bool {
		return highRiskBehaviors[l.LifestyleName] && l.LifestyleAnswer == "Yes"
	}},
}

var complianceRules = []rule[cohort.Compliance]{
	{AlertMedicationNonCompliance, func(c cohort.Compliance, _ Thresholds) bool {
		return c.ComplianceName == "Medication Adherence" &&
			c.OtherCompliance != nil && strings.Contains(*c.OtherCompliance, "Missed")
	}},
}

// concerningPhrases are matched case-insensitively against clinical notes.
var concerningPhrases = []string{
	"worsening", "deteriorat", "emergency", "urgent",
	"severe pain", "uncontrolled", "non-compliant",
}

var reviewRules = []rule[cohort.MedicalReview]{
	{AlertConcerningNotes, func(m cohort.MedicalReview, _ Thresholds) bool {
		note := strings.ToLower(m.ClinicalNote)
		for _, phrase := range concerningPhrases {
			if strings.Contains(note, phrase) {
				return true
			}
		}
		return false
	}},
}

// FrequentVisitThreshold is the visit count above which a patient is
// flagged as a frequent visitor.
const FrequentVisitThreshold = 3
