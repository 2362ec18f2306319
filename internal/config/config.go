package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DataDir       string   `mapstructure:"DATA_DIR"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	DBMaxConns    int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns    int32    `mapstructure:"DB_MIN_CONNS"`
	JWTSecret     string   `mapstructure:"JWT_SECRET"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`

	NumPatients int     `mapstructure:"NUM_PATIENTS"`
	Days        int     `mapstructure:"DAYS"`
	Frequency   string  `mapstructure:"FREQUENCY"`
	AnomalyRate float64 `mapstructure:"ANOMALY_RATE"`
	RepeatRate  float64 `mapstructure:"REPEAT_PATIENT_RATE"`
	Seed        int64   `mapstructure:"SEED"`

	MonitorIntervalMinutes int `mapstructure:"MONITOR_INTERVAL_MINUTES"`

	SMSAPIKey    string `mapstructure:"SMS_API_KEY"`
	SMSUsername  string `mapstructure:"SMS_USERNAME"`
	SMSSenderID  string `mapstructure:"SMS_SENDER_ID"`
	EmailAPIKey  string `mapstructure:"EMAIL_API_KEY"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	AlertEmailTo string `mapstructure:"ALERT_EMAIL_TO"`
	AlertPhoneTo string `mapstructure:"ALERT_PHONE_TO"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("NUM_PATIENTS", 500)
	v.SetDefault("DAYS", 30)
	v.SetDefault("FREQUENCY", "hourly")
	v.SetDefault("ANOMALY_RATE", 0.05)
	v.SetDefault("REPEAT_PATIENT_RATE", 0.7)
	v.SetDefault("SEED", 0)
	v.SetDefault("MONITOR_INTERVAL_MINUTES", 60)
	v.SetDefault("EMAIL_FROM", "alerts@afyalink.org")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("NUM_PATIENTS")
	v.BindEnv("DAYS")
	v.BindEnv("FREQUENCY")
	v.BindEnv("ANOMALY_RATE")
	v.BindEnv("REPEAT_PATIENT_RATE")
	v.BindEnv("SEED")
	v.BindEnv("MONITOR_INTERVAL_MINUTES")
	v.BindEnv("SMS_API_KEY")
	v.BindEnv("SMS_USERNAME")
	v.BindEnv("SMS_SENDER_ID")
	v.BindEnv("EMAIL_API_KEY")
	v.BindEnv("EMAIL_FROM")
	v.BindEnv("ALERT_EMAIL_TO")
	v.BindEnv("ALERT_PHONE_TO")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// MonitorInterval returns how often the background monitors run.
func (c *Config) MonitorInterval() time.Duration {
	return time.Duration(c.MonitorIntervalMinutes) * time.Minute
}

// Validate checks that the configuration is safe to run. The database is
// optional (the CSV store is the primary store), but JWT_SECRET is required
// in production so signin tokens cannot be forged.
func (c *Config) Validate() error {
	if c.NumPatients <= 0 {
		return fmt.Errorf("NUM_PATIENTS must be positive, got %d", c.NumPatients)
	}
	if c.Days <= 0 {
		return fmt.Errorf("DAYS must be positive, got %d", c.Days)
	}
	if c.Frequency != "hourly" && c.Frequency != "daily" {
		return fmt.Errorf("FREQUENCY must be \"hourly\" or \"daily\", got %q", c.Frequency)
	}
	if c.AnomalyRate < 0 || c.AnomalyRate > 1 {
		return fmt.Errorf("ANOMALY_RATE must be in [0,1], got %v", c.AnomalyRate)
	}
	if c.RepeatRate < 0 || c.RepeatRate > 1 {
		return fmt.Errorf("REPEAT_PATIENT_RATE must be in [0,1], got %v", c.RepeatRate)
	}
	if c.MonitorIntervalMinutes <= 0 {
		return fmt.Errorf("MONITOR_INTERVAL_MINUTES must be positive, got %d", c.MonitorIntervalMinutes)
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}
