package cohort

import (
	"testing"

	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

func TestDataset_SaveLoadRoundTrip(t *testing.T) {
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orig := generateTestDataset(t, testConfig())
	if err := orig.Save(store); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadDataset(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Summary() != orig.Summary() {
		t.Fatalf("summary changed across round trip: %+v vs %+v", loaded.Summary(), orig.Summary())
	}
	for i := range orig.Patients {
		if loaded.Patients[i] != orig.Patients[i] {
			t.Fatalf("patient %d changed across round trip:\n got %+v\nwant %+v",
				i, loaded.Patients[i], orig.Patients[i])
		}
	}
	for i := range orig.BPLogs {
		if loaded.BPLogs[i] != orig.BPLogs[i] {
			t.Fatalf("bp log %d changed across round trip", i)
		}
	}
	for i := range orig.Diagnoses {
		a, b := orig.Diagnoses[i], loaded.Diagnoses[i]
		if !optIntEq(a.DiabetesYearOfDiag, b.DiabetesYearOfDiag) ||
			!optStrEq(a.DiabetesDiagnosis, b.DiabetesDiagnosis) ||
			!optStrEq(a.DiabetesControlType, b.DiabetesControlType) {
			t.Fatalf("diagnosis %d optional fields changed across round trip", i)
		}
	}
	if loaded.Config.Seed != orig.Config.Seed {
		t.Fatalf("config seed %d, want %d", loaded.Config.Seed, orig.Config.Seed)
	}
}

func TestLoadDataset_VitalsOptional(t *testing.T) {
	store, err := tablestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := generateTestDataset(t, testConfig())
	d.Vitals = nil
	if err := d.Save(store); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Older snapshots predate the health metrics table entirely.
	loaded, err := LoadDataset(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Patients) == 0 {
		t.Fatal("expected patients after load")
	}
}

func optIntEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func optStrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
