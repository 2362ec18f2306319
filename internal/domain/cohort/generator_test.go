package cohort

import (
	"math"
	"testing"
	"time"

	"github.com/afyalink/afyalink/internal/domain/catalog"
)

func testConfig() GenerationConfig {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return GenerationConfig{
		NumPatients: 10,
		Start:       start,
		End:         start.AddDate(0, 0, 1),
		Frequency:   FrequencyHourly,
		AnomalyRate: 0.05,
		RepeatRate:  0.5,
		Seed:        7,
	}
}

func testSites(t *testing.T) []catalog.Site {
	t.Helper()
	return catalog.NewGenerator(catalog.RosterSeed).GenerateSites()
}

func generateTestDataset(t *testing.T, cfg GenerationConfig) *Dataset {
	t.Helper()
	d, err := NewGenerator(cfg, testSites(t), nil).Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestGenerate_Counts(t *testing.T) {
	cfg := testConfig()
	d := generateTestDataset(t, cfg)

	if len(d.Patients) != cfg.NumPatients {
		t.Fatalf("expected %d patients, got %d", cfg.NumPatients, len(d.Patients))
	}
	if len(d.Screenings) != len(d.Patients) {
		t.Fatalf("expected one screening per patient row, got %d for %d patients",
			len(d.Screenings), len(d.Patients))
	}
	if len(d.BPLogs) < len(d.Screenings) {
		t.Fatalf("expected at least one bp log per screening, got %d", len(d.BPLogs))
	}
	if len(d.GlucoseLogs) < len(d.Screenings) {
		t.Fatalf("expected at least one glucose log per screening, got %d", len(d.GlucoseLogs))
	}
	if len(d.Diagnoses) < len(d.Patients) {
		t.Fatalf("expected at least one diagnosis per patient, got %d", len(d.Diagnoses))
	}

	distinct := map[string]bool{}
	for _, p := range d.Patients {
		distinct[p.PatientID] = true
	}
	wantVitals := len(distinct) * 24
	if len(d.Vitals) != wantVitals {
		t.Fatalf("expected %d vitals samples for %d distinct patients, got %d",
			wantVitals, len(distinct), len(d.Vitals))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := testConfig()
	a := generateTestDataset(t, cfg)
	b := generateTestDataset(t, cfg)

	if a.Summary() != b.Summary() {
		t.Fatalf("summaries differ: %+v vs %+v", a.Summary(), b.Summary())
	}
	for i := range a.Patients {
		if a.Patients[i] != b.Patients[i] {
			t.Fatalf("patient %d differs between runs", i)
		}
	}
	for i := range a.Vitals {
		if a.Vitals[i] != b.Vitals[i] {
			t.Fatalf("vitals sample %d differs between runs", i)
		}
	}
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	cfg := testConfig()
	a := generateTestDataset(t, cfg)
	cfg.Seed = 8
	b := generateTestDataset(t, cfg)

	if a.Patients[0].PatientID == b.Patients[0].PatientID {
		t.Fatalf("different seeds produced the same first patient id %s", a.Patients[0].PatientID)
	}
}

func TestGenerate_BMIInvariant(t *testing.T) {
	d := generateTestDataset(t, testConfig())
	for _, s := range d.Screenings {
		want := math.Round(s.Weight/math.Pow(s.Height/100, 2)*10) / 10
		if s.BMI != want {
			t.Fatalf("screening %s: bmi %v, want %v from height %v weight %v",
				s.ScreeningID, s.BMI, want, s.Height, s.Weight)
		}
	}
}

func TestGenerate_OneLatestPerTrack(t *testing.T) {
	d := generateTestDataset(t, testConfig())

	latest := map[string]int{}
	total := map[string]int{}
	for _, l := range d.BPLogs {
		total[l.PatientTrackID]++
		if l.IsLatest {
			latest[l.PatientTrackID]++
		}
	}
	for track := range total {
		if latest[track] != 1 {
			t.Fatalf("track %s has %d latest readings, want exactly 1", track, latest[track])
		}
	}

	latest = map[string]int{}
	for _, l := range d.GlucoseLogs {
		if l.IsLatest {
			latest[l.PatientTrackID]++
		}
	}
	for track, n := range latest {
		if n != 1 {
			t.Fatalf("glucose track %s has %d latest readings", track, n)
		}
	}
}

func TestGenerate_ForeignKeys(t *testing.T) {
	d := generateTestDataset(t, testConfig())

	patients := map[string]bool{}
	for _, p := range d.Patients {
		patients[p.PatientID] = true
	}
	for _, s := range d.Screenings {
		if !patients[s.PatientID] {
			t.Fatalf("screening %s references unknown patient %s", s.ScreeningID, s.PatientID)
		}
	}
	for _, l := range d.BPLogs {
		if !patients[l.PatientID] {
			t.Fatalf("bp log %s references unknown patient %s", l.BPLogID, l.PatientID)
		}
	}
	bpLogs := map[string]bool{}
	for _, l := range d.BPLogs {
		bpLogs[l.BPLogID] = true
	}
	for _, c := range d.Compliances {
		if !bpLogs[c.BPLogID] {
			t.Fatalf("compliance %s references unknown bp log %s", c.ComplianceRecordID, c.BPLogID)
		}
	}
	for _, v := range d.Visits {
		if !patients[v.PatientID] {
			t.Fatalf("visit %s references unknown patient %s", v.VisitID, v.PatientID)
		}
	}
}

func TestGenerate_TimestampsInRange(t *testing.T) {
	cfg := testConfig()
	d := generateTestDataset(t, cfg)

	for _, p := range d.Patients {
		if p.CreatedAt.Before(cfg.Start) || !p.CreatedAt.Before(cfg.End.Add(time.Second)) {
			t.Fatalf("patient %s created_at %s outside [%s, %s]",
				p.PatientID, p.CreatedAt, cfg.Start, cfg.End)
		}
	}
	for _, s := range d.Screenings {
		if s.CreatedAt.Before(cfg.Start) || s.CreatedAt.After(cfg.End) {
			t.Fatalf("screening %s created_at %s outside range", s.ScreeningID, s.CreatedAt)
		}
	}
	for _, v := range d.Vitals {
		if v.Timestamp.Before(cfg.Start) || !v.Timestamp.Before(cfg.End) {
			t.Fatalf("vitals timestamp %s outside [start, end)", v.Timestamp)
		}
	}
}

func TestGenerate_RepeatPatientsShareIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.NumPatients = 50
	cfg.RepeatRate = 0.9
	d := generateTestDataset(t, cfg)

	byID := map[string]Patient{}
	repeats := 0
	for _, p := range d.Patients {
		if p.IsRepeatVisit {
			repeats++
			base, ok := byID[p.PatientID]
			if !ok {
				t.Fatalf("repeat row for %s has no earlier base row", p.PatientID)
			}
			if base.FirstName != p.FirstName || base.NationalID != p.NationalID {
				t.Fatalf("repeat row for %s changed identity fields", p.PatientID)
			}
			continue
		}
		byID[p.PatientID] = p
	}
	if repeats == 0 {
		t.Fatal("expected repeat visits at 0.9 repeat rate")
	}
}

func TestAgeBand(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{25, "15-49"},
		{49, "15-49"},
		{50, "50+"},
		{80, "50+"},
	}
	for _, tc := range cases {
		if got := AgeBand(tc.age); got != tc.want {
			t.Errorf("AgeBand(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestGenerate_ScreeningRiskLevels(t *testing.T) {
	d := generateTestDataset(t, testConfig())
	for _, s := range d.Screenings {
		var want string
		switch {
		case s.CVDRiskScore < 10:
			want = "Low"
		case s.CVDRiskScore < 20:
			want = "Medium"
		default:
			want = "High"
		}
		if s.CVDRiskLevel != want {
			t.Fatalf("cvd score %v labeled %q, want %q", s.CVDRiskScore, s.CVDRiskLevel, want)
		}
		refer := s.CVDRiskLevel != "Low" || s.PHQ4RiskLevel == "Moderate" || s.PHQ4RiskLevel == "Severe"
		if s.ReferAssessment != refer {
			t.Fatalf("refer_assessment %v inconsistent with cvd %q phq4 %q",
				s.ReferAssessment, s.CVDRiskLevel, s.PHQ4RiskLevel)
		}
	}
}

func TestMealAdjustment(t *testing.T) {
	g := NewGenerator(testConfig(), testSites(t), nil)
	cases := []struct {
		hour   int
		lo, hi float64
	}{
		{10, 1.1, 1.3},
		{15, 1.15, 1.25},
		{21, 1.1, 1.2},
		{3, 1.05, 1.15},
		{13, 1.0, 1.0},
		{0, 1.0, 1.0},
	}
	for _, tc := range cases {
		got := g.mealAdjustment(tc.hour)
		if got < tc.lo || got > tc.hi {
			t.Errorf("mealAdjustment(%d) = %v, want in [%v, %v]", tc.hour, got, tc.lo, tc.hi)
		}
	}
}
