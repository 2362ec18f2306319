package cohort

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PGMirror bulk loads each published snapshot into Postgres for external
// analytics. The CSV snapshot stays the source of truth; the mirror is
// rebuilt wholesale on every publication.
type PGMirror struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPGMirror(pool *pgxpool.Pool, logger zerolog.Logger) *PGMirror {
	return &PGMirror{pool: pool, logger: logger.With().Str("component", "pg_mirror").Logger()}
}

func (m *PGMirror) MirrorDataset(ctx context.Context, d *Dataset) error {
	started := time.Now()
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin mirror tx: %w", err)
	}
	defer tx.Rollback(ctx)

	loads := []struct {
		table string
		cols  []string
		rows  [][]any
	}{
		{TablePatients, PatientHeader(), anyRows(d.Patients, patientRow)},
		{TableScreenings, ScreeningHeader(), anyRows(d.Screenings, screeningRow)},
		{TableBPLogs, BPLogHeader(), anyRows(d.BPLogs, bpLogRow)},
		{TableGlucose, GlucoseLogHeader(), anyRows(d.GlucoseLogs, glucoseRow)},
		{TableDiagnoses, DiagnosisHeader(), anyRows(d.Diagnoses, diagnosisRow)},
		{TableLifestyle, LifestyleHeader(), anyRows(d.Lifestyles, lifestyleRow)},
		{TableCompliance, ComplianceHeader(), anyRows(d.Compliances, complianceRow)},
		{TableReviews, MedicalReviewHeader(), anyRows(d.Reviews, reviewRow)},
		{TableVisits, VisitHeader(), anyRows(d.Visits, visitRow)},
		{TableVitals, VitalsHeader(), anyRows(d.Vitals, vitalsRow)},
	}

	for _, l := range loads {
		if _, err := tx.Exec(ctx, "TRUNCATE "+l.table); err != nil {
			return fmt.Errorf("truncate %s: %w", l.table, err)
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{l.table}, l.cols, pgx.CopyFromRows(l.rows))
		if err != nil {
			return fmt.Errorf("copy %s: %w", l.table, err)
		}
		m.logger.Debug().Str("table", l.table).Int64("rows", n).Msg("mirrored")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit mirror tx: %w", err)
	}
	m.logger.Info().Dur("took", time.Since(started)).Msg("snapshot mirrored to postgres")
	return nil
}

func anyRows[T any](items []T, row func(T) []any) [][]any {
	out := make([][]any, len(items))
	for i, it := range items {
		out[i] = row(it)
	}
	return out
}

func patientRow(p Patient) []any {
	return []any{
		p.PatientID, p.NationalID, p.FirstName, p.MiddleName, p.LastName,
		p.Initial, p.Gender, p.DateOfBirth, p.Age, p.Occupation,
		p.LevelOfEducation, p.IsRegularSmoker, p.PhoneNumber,
		p.PhoneNumberCategory, p.CountryID, p.CountryName, p.CountyID,
		p.CountyName, p.SubCountyID, p.SubCountyName, p.Landmark,
		p.InsuranceID, p.InsuranceStatus, p.InsuranceType, p.ProgramID,
		p.ProgramName, p.SiteID, p.SiteName, p.IsPregnant, p.IsSupportGroup,
		p.IsRepeatVisit, p.HasHypertension, p.OnHTNTreatment, p.HasDiabetes,
		p.OnDiabetesTreatment, p.HasMentalHealthIssue, p.OnMHTreatment,
		p.IsActive, p.IsDeleted, p.TenantID, p.CreatedBy, p.UpdatedBy,
		p.CreatedAt, p.UpdatedAt,
	}
}

func screeningRow(s Screening) []any {
	return []any{
		s.ScreeningID, s.PatientID, s.FirstName, s.LastName, s.MiddleName,
		s.Gender, s.DateOfBirth, s.Age, s.NationalID, s.Height, s.Weight,
		s.BMI, s.AvgSystolic, s.AvgDiastolic, s.AvgPulse, s.GlucoseValue,
		s.GlucoseType, s.GlucoseDateTime, s.LastMealTime,
		s.IsBeforeDiabetesDiag, s.IsBeforeHTNDiag, s.IsRegularSmoker,
		s.CVDRiskScore, s.CVDRiskLevel, s.PHQ4Score, s.PHQ4RiskLevel,
		s.ReferAssessment, s.CountryID, s.CountyID, s.SubCountyID, s.SiteID,
		s.SiteName, s.Latitude, s.Longitude, s.PhoneNumber, s.Type,
		s.Category, s.IsLatest, s.IsActive, s.IsDeleted, s.TenantID,
		s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	}
}

func bpLogRow(b BPLog) []any {
	return []any{
		b.BPLogID, b.PatientID, b.PatientTrackID, b.AvgSystolic,
		b.AvgDiastolic, b.AvgPulse, b.Height, b.Weight, b.BMI, b.Temperature,
		b.IsRegularSmoker, b.CVDRiskScore, b.CVDRiskLevel, b.RiskLevel,
		b.Type, b.IsLatest, b.IsActive, b.IsDeleted, b.TenantID, b.CreatedBy,
		b.UpdatedBy, b.CreatedAt, b.UpdatedAt,
	}
}

func glucoseRow(g GlucoseLog) []any {
	return []any{
		g.GlucoseLogID, g.PatientID, g.PatientTrackID, g.GlucoseValue,
		g.GlucoseType, g.HbA1c, g.Type, g.IsLatest, g.IsActive, g.IsDeleted,
		g.TenantID, g.GlucoseDateTime, g.LastMealTime, g.CreatedBy,
		g.UpdatedBy, g.CreatedAt, g.UpdatedAt,
	}
}

func diagnosisRow(d Diagnosis) []any {
	return []any{
		d.DiagnosisID, d.PatientID, d.PatientTrackID, d.DiabetesYearOfDiag,
		d.DiabetesPatientType, d.HTNPatientType, d.DiabetesDiagnosis,
		d.HTNYearOfDiag, d.IsDiabetesDiagnosis, d.IsHTNDiagnosis,
		d.DiabetesControlType, d.IsActive, d.IsDeleted, d.TenantID,
		d.CreatedBy, d.UpdatedBy, d.CreatedAt, d.UpdatedAt,
	}
}

func lifestyleRow(l Lifestyle) []any {
	return []any{
		l.LifestyleRecordID, l.LifestyleID, l.PatientID, l.PatientTrackID,
		l.LifestyleName, l.LifestyleAnswer, l.Comments, l.IsActive,
		l.IsDeleted, l.TenantID, l.CreatedBy, l.UpdatedBy, l.CreatedAt,
		l.UpdatedAt,
	}
}

func complianceRow(c Compliance) []any {
	return []any{
		c.ComplianceRecordID, c.ComplianceID, c.PatientID, c.Name,
		c.ComplianceName, c.OtherCompliance, c.BPLogID, c.PatientTrackID,
		c.IsActive, c.IsDeleted, c.TenantID, c.CreatedBy, c.UpdatedBy,
		c.CreatedAt, c.UpdatedAt,
	}
}

func reviewRow(m MedicalReview) []any {
	return []any{
		m.ReviewID, m.PatientID, m.PatientTrackID, m.PatientVisitID,
		m.ClinicalNote, m.PhysicalExamComment, m.ComplaintComment,
		m.IsActive, m.IsDeleted, m.TenantID, m.CreatedBy, m.UpdatedBy,
		m.CreatedAt, m.UpdatedAt,
	}
}

func visitRow(v Visit) []any {
	return []any{
		v.VisitID, v.PatientID, v.PatientTrackID, v.VisitDate,
		v.IsPrescription, v.IsInvestigation, v.IsMedicalReview,
		v.TreatmentPlan, v.IsActive, v.IsDeleted, v.TenantID, v.CreatedBy,
		v.UpdatedBy, v.CreatedAt, v.UpdatedAt,
	}
}

func vitalsRow(s VitalsSample) []any {
	return []any{s.PatientID, s.Timestamp, s.Glucose, s.Systolic, s.Diastolic, s.HeartRate}
}
