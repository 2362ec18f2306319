package cohort

import (
	"testing"
	"time"
)

func TestGenerationConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*GenerationConfig)
		wantErr bool
	}{
		{"valid", func(c *GenerationConfig) {}, false},
		{"zero patients", func(c *GenerationConfig) { c.NumPatients = 0 }, true},
		{"negative patients", func(c *GenerationConfig) { c.NumPatients = -5 }, true},
		{"start after end", func(c *GenerationConfig) { c.Start = c.End.AddDate(0, 0, 1) }, true},
		{"start equals end", func(c *GenerationConfig) { c.Start = c.End }, true},
		{"bad frequency", func(c *GenerationConfig) { c.Frequency = "weekly" }, true},
		{"daily frequency", func(c *GenerationConfig) { c.Frequency = FrequencyDaily }, false},
		{"anomaly rate above one", func(c *GenerationConfig) { c.AnomalyRate = 1.5 }, true},
		{"negative repeat rate", func(c *GenerationConfig) { c.RepeatRate = -0.1 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGenerationConfig_SampleInterval(t *testing.T) {
	cfg := testConfig()
	if got := cfg.SampleInterval(); got != time.Hour {
		t.Fatalf("hourly interval = %s, want 1h", got)
	}
	cfg.Frequency = FrequencyDaily
	if got := cfg.SampleInterval(); got != 24*time.Hour {
		t.Fatalf("daily interval = %s, want 24h", got)
	}
}

func TestGenerationConfig_Days(t *testing.T) {
	cfg := testConfig()
	if got := cfg.Days(); got != 1 {
		t.Fatalf("Days() = %d, want 1", got)
	}
	cfg.End = cfg.Start.Add(30 * time.Minute)
	if got := cfg.Days(); got != 1 {
		t.Fatalf("sub-day range Days() = %d, want 1", got)
	}
	cfg.End = cfg.Start.AddDate(0, 0, 30)
	if got := cfg.Days(); got != 30 {
		t.Fatalf("Days() = %d, want 30", got)
	}
}

func TestDefaultGenerationConfig(t *testing.T) {
	cfg := DefaultGenerationConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.NumPatients != 500 || cfg.Frequency != FrequencyHourly {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Days() != 30 {
		t.Fatalf("default range covers %d days, want 30", cfg.Days())
	}
}
