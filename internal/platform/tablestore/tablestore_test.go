package tablestore

import (
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestWriteReadTable(t *testing.T) {
	s := newTestStore(t)

	header := []string{"patient_id", "first_name", "age"}
	rows := [][]string{
		{"100000001", "Wanjiku", "42"},
		{"100000002", "Otieno", "57"},
	}
	if err := s.WriteTable("patients", header, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotHeader, gotRows, err := s.ReadTable("patients")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotHeader) != 3 || gotHeader[0] != "patient_id" {
		t.Errorf("unexpected header: %v", gotHeader)
	}
	if len(gotRows) != 2 || gotRows[1][1] != "Otieno" {
		t.Errorf("unexpected rows: %v", gotRows)
	}
}

func TestWriteTable_Overwrite(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteTable("sites", []string{"id"}, [][]string{{"1"}, {"2"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.WriteTable("sites", []string{"id"}, [][]string{{"3"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, rows, err := s.ReadTable("sites")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "3" {
		t.Errorf("expected overwritten table, got %v", rows)
	}
}

func TestReadTable_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.ReadTable("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.HasTable("missing") {
		t.Error("expected HasTable to be false")
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type snapshot struct {
		Sites int `json:"sites"`
		Users int `json:"users"`
	}

	if err := s.WriteState("activity_state", snapshot{Sites: 91, Users: 273}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got snapshot
	if err := s.ReadState("activity_state", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Sites != 91 || got.Users != 273 {
		t.Errorf("unexpected state: %+v", got)
	}
}

func TestReadState_NotFound(t *testing.T) {
	s := newTestStore(t)
	var v map[string]any
	if err := s.ReadState("never_written", &v); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
