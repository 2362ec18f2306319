package db

import (
	"strings"
	"testing"
)

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no embedded migrations found")
	}

	for i, m := range migrations {
		if m.SQL == "" {
			t.Fatalf("migration %d has empty SQL", m.Version)
		}
		if i > 0 && migrations[i-1].Version >= m.Version {
			t.Fatalf("migrations not sorted: %d before %d", migrations[i-1].Version, m.Version)
		}
	}

	first := migrations[0]
	if first.Version != 1 || first.Name != "mirror_schema" {
		t.Fatalf("unexpected first migration: %+v", first)
	}
	for _, table := range []string{"patients", "screenings", "bp_logs", "glucose_logs", "health_metrics"} {
		if !strings.Contains(first.SQL, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("mirror schema missing table %s", table)
		}
	}
}
