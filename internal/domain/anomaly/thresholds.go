// Package anomaly classifies health records against clinical thresholds
// and produces ranked alerts for the dashboard. All comparisons are
// strict: a glucose reading of exactly 300 does not trip the 300
// critical-high bound, 300.1 does.
package anomaly

// Band holds the four clinical bounds for one vital sign.
type Band struct {
	CriticalHigh float64 `json:"critical_high"`
	CriticalLow  float64 `json:"critical_low"`
	WarningHigh  float64 `json:"warning_high"`
	WarningLow   float64 `json:"warning_low"`
}

// HbA1cBand only has upper bounds; there is no dangerously low HbA1c.
type HbA1cBand struct {
	CriticalHigh float64 `json:"critical_high"`
	WarningHigh  float64 `json:"warning_high"`
}

// Thresholds carries every clinical bound the detectors evaluate.
type Thresholds struct {
	Glucose   Band      `json:"glucose"`
	Systolic  Band      `json:"systolic"`
	Diastolic Band      `json:"diastolic"`
	HbA1c     HbA1cBand `json:"hba1c"`
	Pulse     Band      `json:"pulse"`
	BMI       Band      `json:"bmi"`
}

// DefaultThresholds returns the standard clinical bounds used in
// production.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Glucose:   Band{CriticalHigh: 300, CriticalLow: 70, WarningHigh: 180, WarningLow: 90},
		Systolic:  Band{CriticalHigh: 180, CriticalLow: 90, WarningHigh: 140, WarningLow: 100},
		Diastolic: Band{CriticalHigh: 120, CriticalLow: 60, WarningHigh: 90, WarningLow: 70},
		HbA1c:     HbA1cBand{CriticalHigh: 9.0, WarningHigh: 6.5},
		Pulse:     Band{CriticalHigh: 120, CriticalLow: 40, WarningHigh: 100, WarningLow: 50},
		BMI:       Band{CriticalHigh: 35, CriticalLow: 16, WarningHigh: 30, WarningLow: 18.5},
	}
}

// ElevatedRandomGlucose is the elevated bound for random (non-fasting)
// readings, 20% above the fasting warning bound.
func (t Thresholds) ElevatedRandomGlucose() float64 {
	return t.Glucose.WarningHigh * 1.2
}
