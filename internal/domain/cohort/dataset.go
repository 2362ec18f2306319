package cohort

import (
	"errors"
	"fmt"

	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

// Table file names as written under the data directory.
const (
	TablePatients   = "patients"
	TableScreenings = "screenings"
	TableBPLogs     = "bp_logs"
	TableGlucose    = "glucose_logs"
	TableDiagnoses  = "patient_diagnosis"
	TableLifestyle  = "patient_lifestyle"
	TableCompliance = "patient_medical_compliance"
	TableReviews    = "patient_medical_reviews"
	TableVisits     = "patient_visits"
	TableVitals     = "health_metrics"
)

// Dataset is one complete generated snapshot. It is built in full by the
// generator and swapped in atomically; it is never mutated after publication.
type Dataset struct {
	Config      GenerationConfig
	Patients    []Patient
	Screenings  []Screening
	BPLogs      []BPLog
	GlucoseLogs []GlucoseLog
	Diagnoses   []Diagnosis
	Lifestyles  []Lifestyle
	Compliances []Compliance
	Reviews     []MedicalReview
	Visits      []Visit
	Vitals      []VitalsSample
}

// Summary reports row counts per table after generation.
type Summary struct {
	Patients    int `json:"patients"`
	Screenings  int `json:"screenings"`
	BPLogs      int `json:"bp_logs"`
	GlucoseLogs int `json:"glucose_logs"`
	Diagnoses   int `json:"diagnoses"`
	Lifestyles  int `json:"lifestyle_records"`
	Compliances int `json:"compliance_records"`
	Reviews     int `json:"medical_reviews"`
	Visits      int `json:"visits"`
	Vitals      int `json:"health_metric_samples"`
}

func (d *Dataset) Summary() Summary {
	return Summary{
		Patients:    len(d.Patients),
		Screenings:  len(d.Screenings),
		BPLogs:      len(d.BPLogs),
		GlucoseLogs: len(d.GlucoseLogs),
		Diagnoses:   len(d.Diagnoses),
		Lifestyles:  len(d.Lifestyles),
		Compliances: len(d.Compliances),
		Reviews:     len(d.Reviews),
		Visits:      len(d.Visits),
		Vitals:      len(d.Vitals),
	}
}

// Save writes every table to the store. Each table write is atomic; a
// failure mid-save leaves earlier tables at the new snapshot and later
// tables at the old one, which the caller surfaces as an error.
func (d *Dataset) Save(store *tablestore.Store) error {
	if err := store.WriteTable(TablePatients, PatientHeader(), records(d.Patients, Patient.Record)); err != nil {
		return fmt.Errorf("save patients: %w", err)
	}
	if err := store.WriteTable(TableScreenings, ScreeningHeader(), records(d.Screenings, Screening.Record)); err != nil {
		return fmt.Errorf("save screenings: %w", err)
	}
	if err := store.WriteTable(TableBPLogs, BPLogHeader(), records(d.BPLogs, BPLog.Record)); err != nil {
		return fmt.Errorf("save bp logs: %w", err)
	}
	if err := store.WriteTable(TableGlucose, GlucoseLogHeader(), records(d.GlucoseLogs, GlucoseLog.Record)); err != nil {
		return fmt.Errorf("save glucose logs: %w", err)
	}
	if err := store.WriteTable(TableDiagnoses, DiagnosisHeader(), records(d.Diagnoses, Diagnosis.Record)); err != nil {
		return fmt.Errorf("save diagnoses: %w", err)
	}
	if err := store.WriteTable(TableLifestyle, LifestyleHeader(), records(d.Lifestyles, Lifestyle.Record)); err != nil {
		return fmt.Errorf("save lifestyle records: %w", err)
	}
	if err := store.WriteTable(TableCompliance, ComplianceHeader(), records(d.Compliances, Compliance.Record)); err != nil {
		return fmt.Errorf("save compliance records: %w", err)
	}
	if err := store.WriteTable(TableReviews, MedicalReviewHeader(), records(d.Reviews, MedicalReview.Record)); err != nil {
		return fmt.Errorf("save medical reviews: %w", err)
	}
	if err := store.WriteTable(TableVisits, VisitHeader(), records(d.Visits, Visit.Record)); err != nil {
		return fmt.Errorf("save visits: %w", err)
	}
	if err := store.WriteTable(TableVitals, VitalsHeader(), records(d.Vitals, VitalsSample.Record)); err != nil {
		return fmt.Errorf("save health metrics: %w", err)
	}
	if err := store.WriteState("generation_config", d.Config); err != nil {
		return fmt.Errorf("save generation config: %w", err)
	}
	return nil
}

// LoadDataset reads a previously saved snapshot. The health metrics table
// is optional so snapshots produced by older tooling still load.
func LoadDataset(store *tablestore.Store) (*Dataset, error) {
	d := &Dataset{}
	var err error
	if d.Patients, err = loadTable(store, TablePatients, PatientFromRecord); err != nil {
		return nil, err
	}
	if d.Screenings, err = loadTable(store, TableScreenings, ScreeningFromRecord); err != nil {
		return nil, err
	}
	if d.BPLogs, err = loadTable(store, TableBPLogs, BPLogFromRecord); err != nil {
		return nil, err
	}
	if d.GlucoseLogs, err = loadTable(store, TableGlucose, GlucoseLogFromRecord); err != nil {
		return nil, err
	}
	if d.Diagnoses, err = loadTable(store, TableDiagnoses, DiagnosisFromRecord); err != nil {
		return nil, err
	}
	if d.Lifestyles, err = loadTable(store, TableLifestyle, LifestyleFromRecord); err != nil {
		return nil, err
	}
	if d.Compliances, err = loadTable(store, TableCompliance, ComplianceFromRecord); err != nil {
		return nil, err
	}
	if d.Reviews, err = loadTable(store, TableReviews, MedicalReviewFromRecord); err != nil {
		return nil, err
	}
	if d.Visits, err = loadTable(store, TableVisits, VisitFromRecord); err != nil {
		return nil, err
	}
	if store.HasTable(TableVitals) {
		if d.Vitals, err = loadTable(store, TableVitals, VitalsFromRecord); err != nil {
			return nil, err
		}
	}
	if err := store.ReadState("generation_config", &d.Config); err != nil && !errors.Is(err, tablestore.ErrNotFound) {
		// Config is advisory metadata; a corrupt file should not block a load.
		d.Config = GenerationConfig{}
	}
	return d, nil
}

func records[T any](items []T, record func(T) []string) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = record(it)
	}
	return rows
}

func loadTable[T any](store *tablestore.Store, name string, decode func([]string) (T, error)) ([]T, error) {
	_, rows, err := store.ReadTable(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	out := make([]T, 0, len(rows))
	for i, rec := range rows {
		item, err := decode(rec)
		if err != nil {
			return nil, fmt.Errorf("load %s: row %d: %w", name, i+1, err)
		}
		out = append(out, item)
	}
	return out, nil
}
