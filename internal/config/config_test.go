package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %s", cfg.DataDir)
	}
	if cfg.NumPatients != 500 {
		t.Errorf("expected default 500 patients, got %d", cfg.NumPatients)
	}
	if cfg.Frequency != "hourly" {
		t.Errorf("expected default hourly frequency, got %s", cfg.Frequency)
	}
	if cfg.AnomalyRate != 0.05 {
		t.Errorf("expected default anomaly rate 0.05, got %v", cfg.AnomalyRate)
	}
	if cfg.RepeatRate != 0.7 {
		t.Errorf("expected default repeat rate 0.7, got %v", cfg.RepeatRate)
	}
	if cfg.MonitorIntervalMinutes != 60 {
		t.Errorf("expected default monitor interval 60, got %d", cfg.MonitorIntervalMinutes)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_MonitorInterval(t *testing.T) {
	c := &Config{MonitorIntervalMinutes: 15}
	if c.MonitorInterval() != 15*time.Minute {
		t.Errorf("expected 15m, got %v", c.MonitorInterval())
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:                    "development",
			DataDir:                "data",
			NumPatients:            100,
			Days:                   7,
			Frequency:              "hourly",
			AnomalyRate:            0.05,
			RepeatRate:             0.7,
			MonitorIntervalMinutes: 60,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero patients", func(c *Config) { c.NumPatients = 0 }},
		{"negative days", func(c *Config) { c.Days = -1 }},
		{"bad frequency", func(c *Config) { c.Frequency = "weekly" }},
		{"anomaly rate above one", func(c *Config) { c.AnomalyRate = 1.5 }},
		{"repeat rate negative", func(c *Config) { c.RepeatRate = -0.1 }},
		{"zero monitor interval", func(c *Config) { c.MonitorIntervalMinutes = 0 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"production without jwt secret", func(c *Config) { c.Env = "production" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
