// Package cohort generates the synthetic patient population and its
// encounter history: patients, screenings, blood-pressure and glucose
// logs, diagnoses, lifestyle and compliance records, medical reviews,
// visits, and a continuous vitals time series. Tables link through shared
// identifier columns (patient_id, patient_track_id, bplog_id, tenant_id,
// site_id) and every child record copies its parent's audit fields.
package cohort

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// TimeLayout is the timestamp format used in every CSV snapshot.
	TimeLayout = "2006-01-02 15:04:05"
	// DateLayout is used for date-only columns.
	DateLayout = "2006-01-02"
)

type Patient struct {
	PatientID            string    `json:"patient_id"`
	NationalID           string    `json:"national_id"`
	FirstName            string    `json:"first_name"`
	MiddleName           string    `json:"middle_name"`
	LastName             string    `json:"last_name"`
	Initial              string    `json:"initial"`
	Gender               string    `json:"gender"`
	DateOfBirth          string    `json:"date_of_birth"`
	Age                  int       `json:"age"`
	Occupation           string    `json:"occupation"`
	LevelOfEducation     string    `json:"level_of_education"`
	IsRegularSmoker      bool      `json:"is_regular_smoker"`
	PhoneNumber          string    `json:"phone_number"`
	PhoneNumberCategory  string    `json:"phone_number_category"`
	CountryID            string    `json:"country_id"`
	CountryName          string    `json:"country_name"`
	CountyID             int       `json:"county_id"`
	CountyName           string    `json:"county_name"`
	SubCountyID          int       `json:"sub_county_id"`
	SubCountyName        string    `json:"sub_county_name"`
	Landmark             string    `json:"landmark"`
	InsuranceID          string    `json:"insurance_id"`
	InsuranceStatus      string    `json:"insurance_status"`
	InsuranceType        string    `json:"insurance_type"`
	ProgramID            string    `json:"program_id"`
	ProgramName          string    `json:"program_name"`
	SiteID               string    `json:"site_id"`
	SiteName             string    `json:"site_name"`
	IsPregnant           bool      `json:"is_pregnant"`
	IsSupportGroup       bool      `json:"is_support_group"`
	IsRepeatVisit        bool      `json:"is_repeat_visit"`
	HasHypertension      bool      `json:"has_hypertension"`
	OnHTNTreatment       bool      `json:"on_htn_treatment"`
	HasDiabetes          bool      `json:"has_diabetes"`
	OnDiabetesTreatment  bool      `json:"on_diabetes_treatment"`
	HasMentalHealthIssue bool      `json:"has_mental_health_issue"`
	OnMHTreatment        bool      `json:"on_mh_treatment"`
	IsActive             bool      `json:"is_active"`
	IsDeleted            bool      `json:"is_deleted"`
	TenantID             string    `json:"tenant_id"`
	CreatedBy            string    `json:"created_by"`
	UpdatedBy            string    `json:"updated_by"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Screening struct {
	ScreeningID          string    `json:"screening_id"`
	PatientID            string    `json:"patient_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	MiddleName           string    `json:"middle_name"`
	Gender               string    `json:"gender"`
	DateOfBirth          string    `json:"date_of_birth"`
	Age                  int       `json:"age"`
	NationalID           string    `json:"national_id"`
	Height               float64   `json:"height"`
	Weight               float64   `json:"weight"`
	BMI                  float64   `json:"bmi"`
	AvgSystolic          int       `json:"avg_systolic"`
	AvgDiastolic         int       `json:"avg_diastolic"`
	AvgPulse             int       `json:"avg_pulse"`
	GlucoseValue         float64   `json:"glucose_value"`
	GlucoseType          string    `json:"glucose_type"`
	GlucoseDateTime      time.Time `json:"glucose_date_time"`
	LastMealTime         time.Time `json:"last_meal_time"`
	IsBeforeDiabetesDiag bool      `json:"is_before_diabetes_diagnosis"`
	IsBeforeHTNDiag      bool      `json:"is_before_htn_diagnosis"`
	IsRegularSmoker      bool      `json:"is_regular_smoker"`
	CVDRiskScore         float64   `json:"cvd_risk_score"`
	CVDRiskLevel         string    `json:"cvd_risk_level"`
	PHQ4Score            int       `json:"phq4_score"`
	PHQ4RiskLevel        string    `json:"phq4_risk_level"`
	ReferAssessment      bool      `json:"refer_assessment"`
	CountryID            string    `json:"country_id"`
	CountyID             int       `json:"county_id"`
	SubCountyID          int       `json:"sub_county_id"`
	SiteID               string    `json:"site_id"`
	SiteName             string    `json:"site_name"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	PhoneNumber          string    `json:"phone_number"`
	Type                 string    `json:"type"`
	Category             string    `json:"category"`
	IsLatest             bool      `json:"is_latest"`
	IsActive             bool      `json:"is_active"`
	IsDeleted            bool      `json:"is_deleted"`
	TenantID             string    `json:"tenant_id"`
	CreatedBy            string    `json:"created_by"`
	UpdatedBy            string    `json:"updated_by"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BPLog struct {
	BPLogID         string    `json:"bplog_id"`
	PatientID       string    `json:"patient_id"`
	PatientTrackID  string    `json:"patient_track_id"`
	AvgSystolic     int       `json:"avg_systolic"`
	AvgDiastolic    int       `json:"avg_diastolic"`
	AvgPulse        int       `json:"avg_pulse"`
	Height          float64   `json:"height"`
	Weight          float64   `json:"weight"`
	BMI             float64   `json:"bmi"`
	Temperature     float64   `json:"temperature"`
	IsRegularSmoker bool      `json:"is_regular_smoker"`
	CVDRiskScore    float64   `json:"cvd_risk_score"`
	CVDRiskLevel    string    `json:"cvd_risk_level"`
	RiskLevel       string    `json:"risk_level"`
	Type            string    `json:"type"`
	IsLatest        bool      `json:"is_latest"`
	IsActive        bool      `json:"is_active"`
	IsDeleted       bool      `json:"is_deleted"`
	TenantID        string    `json:"tenant_id"`
	CreatedBy       string    `json:"created_by"`
	UpdatedBy       string    `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type GlucoseLog struct {
	GlucoseLogID    string    `json:"glucose_log_id"`
	PatientID       string    `json:"patient_id"`
	PatientTrackID  string    `json:"patient_track_id"`
	GlucoseValue    float64   `json:"glucose_value"`
	GlucoseType     string    `json:"glucose_type"`
	HbA1c           float64   `json:"hba1c"`
	Type            string    `json:"type"`
	IsLatest        bool      `json:"is_latest"`
	IsActive        bool      `json:"is_active"`
	IsDeleted       bool      `json:"is_deleted"`
	TenantID        string    `json:"tenant_id"`
	GlucoseDateTime time.Time `json:"glucose_date_time"`
	LastMealTime    time.Time `json:"last_meal_time"`
	CreatedBy       string    `json:"created_by"`
	UpdatedBy       string    `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Diagnosis struct {
	DiagnosisID         string    `json:"patient_diagnosis_id"`
	PatientID           string    `json:"patient_id"`
	PatientTrackID      string    `json:"patient_track_id"`
	DiabetesYearOfDiag  *int      `json:"diabetes_year_of_diagnosis"`
	DiabetesPatientType string    `json:"diabetes_patient_type"`
	HTNPatientType      string    `json:"htn_patient_type"`
	DiabetesDiagnosis   *string   `json:"diabetes_diagnosis"`
	HTNYearOfDiag       *int      `json:"htn_year_of_diagnosis"`
	IsDiabetesDiagnosis bool      `json:"is_diabetes_diagnosis"`
	IsHTNDiagnosis      bool      `json:"is_htn_diagnosis"`
	DiabetesControlType *string   `json:"diabetes_diag_controlled_type"`
	IsActive            bool      `json:"is_active"`
	IsDeleted           bool      `json:"is_deleted"`
	TenantID            string    `json:"tenant_id"`
	CreatedBy           string    `json:"created_by"`
	UpdatedBy           string    `json:"updated_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Lifestyle struct {
	LifestyleRecordID string    `json:"patient_lifestyle_id"`
	LifestyleID       string    `json:"lifestyle_id"`
	PatientID         string    `json:"patient_id"`
	PatientTrackID    string    `json:"patient_track_id"`
	LifestyleName     string    `json:"lifestyle_name"`
	LifestyleAnswer   string    `json:"lifestyle_answer"`
	Comments          string    `json:"comments"`
	IsActive          bool      `json:"is_active"`
	IsDeleted         bool      `json:"is_deleted"`
	TenantID          string    `json:"tenant_id"`
	CreatedBy         string    `json:"created_by"`
	UpdatedBy         string    `json:"updated_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Compliance struct {
	ComplianceRecordID string    `json:"patient_medical_compliance_id"`
	ComplianceID       string    `json:"compliance_id"`
	PatientID          string    `json:"patient_id"`
	Name               *string   `json:"name"`
	ComplianceName     string    `json:"compliance_name"`
	OtherCompliance    *string   `json:"other_compliance"`
	BPLogID            string    `json:"bplog_id"`
	PatientTrackID     string    `json:"patient_track_id"`
	IsActive           bool      `json:"is_active"`
	IsDeleted          bool      `json:"is_deleted"`
	TenantID           string    `json:"tenant_id"`
	CreatedBy          string    `json:"created_by"`
	UpdatedBy          string    `json:"updated_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type MedicalReview struct {
	ReviewID            string    `json:"patient_medical_review_id"`
	PatientID           string    `json:"patient_id"`
	PatientTrackID      string    `json:"patient_track_id"`
	PatientVisitID      string    `json:"patient_visit_id"`
	ClinicalNote        string    `json:"clinical_note"`
	PhysicalExamComment string    `json:"physical_exam_comments"`
	ComplaintComment    string    `json:"complaint_comments"`
	IsActive            bool      `json:"is_active"`
	IsDeleted           bool      `json:"is_deleted"`
	TenantID            string    `json:"tenant_id"`
	CreatedBy           string    `json:"created_by"`
	UpdatedBy           string    `json:"updated_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Visit struct {
	VisitID         string    `json:"patient_visit_id"`
	PatientID       string    `json:"patient_id"`
	PatientTrackID  string    `json:"patient_track_id"`
	VisitDate       time.Time `json:"visit_date"`
	IsPrescription  bool      `json:"is_prescription"`
	IsInvestigation bool      `json:"is_investigation"`
	IsMedicalReview bool      `json:"is_medical_review"`
	TreatmentPlan   string    `json:"patient_treatment_plan"`
	IsActive        bool      `json:"is_active"`
	IsDeleted       bool      `json:"is_deleted"`
	TenantID        string    `json:"tenant_id"`
	CreatedBy       string    `json:"created_by"`
	UpdatedBy       string    `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// VitalsSample is one row of the continuous health metrics series.
type VitalsSample struct {
	PatientID string    `json:"patient_id"`
	Timestamp time.Time `json:"timestamp"`
	Glucose   float64   `json:"glucose"`
	Systolic  float64   `json:"blood_pressure_systolic"`
	Diastolic float64   `json:"blood_pressure_diastolic"`
	HeartRate float64   `json:"heart_rate"`
}

// ---------------------------------------------------------------------------
// CSV codec helpers
// ---------------------------------------------------------------------------

func fmtBool(b bool) string      { return strconv.FormatBool(b) }
func fmtInt(i int) string        { return strconv.Itoa(i) }
func fmtF(f float64) string      { return strconv.FormatFloat(f, 'f', -1, 64) }
func fmtTime(t time.Time) string { return t.Format(TimeLayout) }

func fmtOptInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func fmtOptStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// recScanner walks a CSV record left to right, capturing the first error.
type recScanner struct {
	rec []string
	i   int
	err error
}

func (r *recScanner) str() string {
	if r.err != nil || r.i >= len(r.rec) {
		if r.err == nil {
			r.err = fmt.Errorf("record too short: %d fields", len(r.rec))
		}
		return ""
	}
	v := r.rec[r.i]
	r.i++
	return v
}

func (r *recScanner) intVal() int {
	s := r.str()
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", r.i-1, err)
	}
	return v
}

func (r *recScanner) floatVal() float64 {
	s := r.str()
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", r.i-1, err)
	}
	return v
}

func (r *recScanner) boolVal() bool {
	s := r.str()
	if r.err != nil {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", r.i-1, err)
	}
	return v
}

func (r *recScanner) timeVal() time.Time {
	s := r.str()
	if r.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", r.i-1, err)
	}
	return t
}

func (r *recScanner) optInt() *int {
	s := r.str()
	if r.err != nil || s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", r.i-1, err)
		return nil
	}
	return &v
}

func (r *recScanner) optStr() *string {
	s := r.str()
	if r.err != nil || s == "" {
		return nil
	}
	return &s
}
