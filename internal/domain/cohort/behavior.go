package cohort

import "math"

// applyBehavior layers physiological patterns onto a raw sample: post-meal
// glucose rises, age-related blood pressure drift, smoker heart rate, and
// circadian swings peaking mid afternoon.
func (g *Generator) applyBehavior(s *VitalsSample, age int, smoker bool) {
	if g.cfg.Frequency == FrequencyHourly {
		s.Glucose *= g.mealAdjustment(s.Timestamp.Hour())
	}

	s.Systolic += (float64(age) - 40) * 0.2

	if smoker {
		s.HeartRate += 5
	}

	c := circadian(s.Timestamp.Hour())
	s.Systolic += 3 * c
	s.HeartRate += 5 * c
}

// mealAdjustment models glucose two hours after typical Kenyan meal times,
// plus the early morning dawn phenomenon.
func (g *Generator) mealAdjustment(hour int) float64 {
	uniform := func(lo, hi float64) float64 {
		return lo + g.rng.Float64()*(hi-lo)
	}
	switch {
	case hour >= 10 && hour <= 11:
		return 1 + uniform(0.1, 0.3)
	case hour >= 15 && hour <= 16:
		return 1 + uniform(0.15, 0.25)
	case hour >= 21 && hour <= 22:
		return 1 + uniform(0.1, 0.2)
	case hour >= 2 && hour <= 5:
		return 1 + uniform(0.05, 0.15)
	default:
		return 1
	}
}

func circadian(hour int) float64 {
	return math.Sin((float64(hour) - 14) / 12 * math.Pi)
}
