package anomaly

import "time"

// Alert types, most to least severe.
const (
	AlertSevereHyperglycemia     = "SEVERE_HYPERGLYCEMIA"
	AlertHypoglycemia            = "HYPOGLYCEMIA"
	AlertHypertensiveCrisis      = "HYPERTENSIVE_CRISIS"
	AlertHypotensiveCrisis       = "HYPOTENSIVE_CRISIS"
	AlertTachycardia             = "TACHYCARDIA"
	AlertBradycardia             = "BRADYCARDIA"
	AlertPoorGlycemicControl     = "POOR_GLYCEMIC_CONTROL"
	AlertHighCVDRisk             = "HIGH_CVD_RISK"
	AlertSevereObesity           = "SEVERE_OBESITY"
	AlertSevereUnderweight       = "SEVERE_UNDERWEIGHT"
	AlertMentalHealthConcern     = "MENTAL_HEALTH_CONCERN"
	AlertUndiagnosedHighRisk     = "UNDIAGNOSED_HIGH_RISK"
	AlertUncontrolledCondition   = "UNCONTROLLED_CONDITION"
	AlertHighRiskLifestyle       = "HIGH_RISK_LIFESTYLE"
	AlertMedicationNonCompliance = "MEDICATION_NON_COMPLIANCE"
	AlertFrequentVisitor         = "FREQUENT_VISITOR"
	AlertConcerningNotes         = "CONCERNING_CLINICAL_NOTES"
	AlertElevatedFastingGlucose  = "ELEVATED_FASTING_GLUCOSE"
	AlertElevatedRandomGlucose   = "ELEVATED_RANDOM_GLUCOSE"
	AlertWarning                 = "WARNING"
)

var severityScores = map[string]int{
	AlertSevereHyperglycemia:     5,
	AlertHypoglycemia:            5,
	AlertHypertensiveCrisis:      5,
	AlertHypotensiveCrisis:       5,
	AlertTachycardia:             4,
	AlertBradycardia:             4,
	AlertPoorGlycemicControl:     4,
	AlertHighCVDRisk:             4,
	AlertSevereObesity:           3,
	AlertSevereUnderweight:       3,
	AlertMentalHealthConcern:     3,
	AlertUndiagnosedHighRisk:     3,
	AlertUncontrolledCondition:   3,
	AlertHighRiskLifestyle:       2,
	AlertMedicationNonCompliance: 2,
	AlertFrequentVisitor:         2,
	AlertConcerningNotes:         2,
	AlertElevatedFastingGlucose:  2,
	AlertElevatedRandomGlucose:   2,
	AlertWarning:                 1,
}

var alertDescriptions = map[string]string{
	AlertSevereHyperglycemia:     "Severely high glucose level detected",
	AlertHypoglycemia:            "Dangerously low glucose level detected",
	AlertHypertensiveCrisis:      "Severely high blood pressure detected",
	AlertHypotensiveCrisis:       "Dangerously low blood pressure detected",
	AlertTachycardia:             "Abnormally high heart rate detected",
	AlertBradycardia:             "Abnormally low heart rate detected",
	AlertPoorGlycemicControl:     "Long-term blood sugar control is poor",
	AlertHighCVDRisk:             "Patient has high cardiovascular disease risk",
	AlertSevereObesity:           "Patient BMI indicates severe obesity",
	AlertSevereUnderweight:       "Patient BMI indicates severe underweight",
	AlertMentalHealthConcern:     "Patient shows signs of mental health concern",
	AlertUndiagnosedHighRisk:     "Patient shows high risk factors but remains undiagnosed",
	AlertUncontrolledCondition:   "Patient's condition appears uncontrolled",
	AlertHighRiskLifestyle:       "Patient engages in high-risk lifestyle behaviors",
	AlertMedicationNonCompliance: "Patient is non-compliant with medications",
	AlertFrequentVisitor:         "Patient has unusually high number of visits",
	AlertConcerningNotes:         "Clinical notes contain concerning language",
	AlertElevatedFastingGlucose:  "Elevated fasting glucose level detected",
	AlertElevatedRandomGlucose:   "Elevated random glucose level detected",
	AlertWarning:                 "General health warning",
}

// SeverityScore ranks an alert type 5 (critical) down to 1 (warning).
// Unknown types score 0.
func SeverityScore(alertType string) int {
	return severityScores[alertType]
}

// Description returns the human readable text for an alert type.
func Description(alertType string) string {
	if d, ok := alertDescriptions[alertType]; ok {
		return d
	}
	return "Potential health concern detected"
}

// Anomaly is one classified alert.
type Anomaly struct {
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	AlertType   string    `json:"alert_type"`
	Severity    int       `json:"severity"`
	Description string    `json:"description"`
	SourceTable string    `json:"source_table"`
	RecordID    string    `json:"record_id"`
	Timestamp   time.Time `json:"timestamp"`
}
