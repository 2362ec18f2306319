package cohort

// CSV headers bind column names exactly; downstream joins and the anomaly
// detectors key off these names.

func PatientHeader() []string {
	return []string{
		"patient_id", "national_id", "first_name", "middle_name", "last_name",
		"initial", "gender", "date_of_birth", "age", "occupation",
		"level_of_education", "is_regular_smoker", "phone_number",
		"phone_number_category", "country_id", "country_name", "county_id",
		"county_name", "sub_county_id", "sub_county_name", "landmark",
		"insurance_id", "insurance_status", "insurance_type", "program_id",
		"program_name", "site_id", "site_name", "is_pregnant",
		"is_support_group", "is_repeat_visit", "has_hypertension",
		"on_htn_treatment", "has_diabetes", "on_diabetes_treatment",
		"has_mental_health_issue", "on_mh_treatment", "is_active",
		"is_deleted", "tenant_id", "created_by", "updated_by", "created_at",
		"updated_at",
	}
}

func (p Patient) Record() []string {
	return []string{
		p.PatientID, p.NationalID, p.FirstName, p.MiddleName, p.LastName,
		p.Initial, p.Gender, p.DateOfBirth, fmtInt(p.Age), p.Occupation,
		p.LevelOfEducation, fmtBool(p.IsRegularSmoker), p.PhoneNumber,
		p.PhoneNumberCategory, p.CountryID, p.CountryName, fmtInt(p.CountyID),
		p.CountyName, fmtInt(p.SubCountyID), p.SubCountyName, p.Landmark,
		p.InsuranceID, p.InsuranceStatus, p.InsuranceType, p.ProgramID,
		p.ProgramName, p.SiteID, p.SiteName, fmtBool(p.IsPregnant),
		fmtBool(p.IsSupportGroup), fmtBool(p.IsRepeatVisit), fmtBool(p.HasHypertension),
		fmtBool(p.OnHTNTreatment), fmtBool(p.HasDiabetes), fmtBool(p.OnDiabetesTreatment),
		fmtBool(p.HasMentalHealthIssue), fmtBool(p.OnMHTreatment), fmtBool(p.IsActive),
		fmtBool(p.IsDeleted), p.TenantID, p.CreatedBy, p.UpdatedBy, fmtTime(p.CreatedAt),
		fmtTime(p.UpdatedAt),
	}
}

func PatientFromRecord(rec []string) (Patient, error) {
	r := &recScanner{rec: rec}
	p := Patient{
		PatientID: r.str(), NationalID: r.str(), FirstName: r.str(),
		MiddleName: r.str(), LastName: r.str(), Initial: r.str(),
		Gender: r.str(), DateOfBirth: r.str(), Age: r.intVal(),
		Occupation: r.str(), LevelOfEducation: r.str(),
		IsRegularSmoker: r.boolVal(), PhoneNumber: r.str(),
		PhoneNumberCategory: r.str(), CountryID: r.str(), CountryName: r.str(),
		CountyID: r.intVal(), CountyName: r.str(), SubCountyID: r.intVal(),
		SubCountyName: r.str(), Landmark: r.str(), InsuranceID: r.str(),
		InsuranceStatus: r.str(), InsuranceType: r.str(), ProgramID: r.str(),
		ProgramName: r.str(), SiteID: r.str(), SiteName: r.str(),
		IsPregnant: r.boolVal(), IsSupportGroup: r.boolVal(),
		IsRepeatVisit: r.boolVal(), HasHypertension: r.boolVal(),
		OnHTNTreatment: r.boolVal(), HasDiabetes: r.boolVal(),
		OnDiabetesTreatment: r.boolVal(), HasMentalHealthIssue: r.boolVal(),
		OnMHTreatment: r.boolVal(), IsActive: r.boolVal(),
		IsDeleted: r.boolVal(), TenantID: r.str(), CreatedBy: r.str(),
		UpdatedBy: r.str(), CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return p, r.err
}

func ScreeningHeader() []string {
	return []string{
		"screening_id", "patient_id", "first_name", "last_name", "middle_name",
		"gender", "date_of_birth", "age", "national_id", "height", "weight",
		"bmi", "avg_systolic", "avg_diastolic", "avg_pulse", "glucose_value",
		"glucose_type", "glucose_date_time", "last_meal_time",
		"is_before_diabetes_diagnosis", "is_before_htn_diagnosis",
		"is_regular_smoker", "cvd_risk_score", "cvd_risk_level", "phq4_score",
		"phq4_risk_level", "refer_assessment", "country_id", "county_id",
		"sub_county_id", "site_id", "site_name", "latitude", "longitude",
		"phone_number", "type", "category", "is_latest", "is_active",
		"is_deleted", "tenant_id", "created_by", "updated_by", "created_at",
		"updated_at",
	}
}

func (s Screening) Record() []string {
	return []string{
		s.ScreeningID, s.PatientID, s.FirstName, s.LastName, s.MiddleName,
		s.Gender, s.DateOfBirth, fmtInt(s.Age), s.NationalID, fmtF(s.Height),
		fmtF(s.Weight), fmtF(s.BMI), fmtInt(s.AvgSystolic), fmtInt(s.AvgDiastolic),
		fmtInt(s.AvgPulse), fmtF(s.GlucoseValue), s.GlucoseType,
		fmtTime(s.GlucoseDateTime), fmtTime(s.LastMealTime),
		fmtBool(s.IsBeforeDiabetesDiag), fmtBool(s.IsBeforeHTNDiag),
		fmtBool(s.IsRegularSmoker), fmtF(s.CVDRiskScore), s.CVDRiskLevel,
		fmtInt(s.PHQ4Score), s.PHQ4RiskLevel, fmtBool(s.ReferAssessment),
		s.CountryID, fmtInt(s.CountyID), fmtInt(s.SubCountyID), s.SiteID,
		s.SiteName, fmtF(s.Latitude), fmtF(s.Longitude), s.PhoneNumber,
		s.Type, s.Category, fmtBool(s.IsLatest), fmtBool(s.IsActive),
		fmtBool(s.IsDeleted), s.TenantID, s.CreatedBy, s.UpdatedBy,
		fmtTime(s.CreatedAt), fmtTime(s.UpdatedAt),
	}
}

func ScreeningFromRecord(rec []string) (Screening, error) {
	r := &recScanner{rec: rec}
	s := Screening{
		ScreeningID: r.str(), PatientID: r.str(), FirstName: r.str(),
		LastName: r.str(), MiddleName: r.str(), Gender: r.str(),
		DateOfBirth: r.str(), Age: r.intVal(), NationalID: r.str(),
		Height: r.floatVal(), Weight: r.floatVal(), BMI: r.floatVal(),
		AvgSystolic: r.intVal(), AvgDiastolic: r.intVal(), AvgPulse: r.intVal(),
		GlucoseValue: r.floatVal(), GlucoseType: r.str(),
		GlucoseDateTime: r.timeVal(), LastMealTime: r.timeVal(),
		IsBeforeDiabetesDiag: r.boolVal(), IsBeforeHTNDiag: r.boolVal(),
		IsRegularSmoker: r.boolVal(), CVDRiskScore: r.floatVal(),
		CVDRiskLevel: r.str(), PHQ4Score: r.intVal(), PHQ4RiskLevel: r.str(),
		ReferAssessment: r.boolVal(), CountryID: r.str(), CountyID: r.intVal(),
		SubCountyID: r.intVal(), SiteID: r.str(), SiteName: r.str(),
		Latitude: r.floatVal(), Longitude: r.floatVal(), PhoneNumber: r.str(),
		Type: r.str(), Category: r.str(), IsLatest: r.boolVal(),
		IsActive: r.boolVal(), IsDeleted: r.boolVal(), TenantID: r.str(),
		CreatedBy: r.str(), UpdatedBy: r.str(), CreatedAt: r.timeVal(),
		UpdatedAt: r.timeVal(),
	}
	return s, r.err
}

func BPLogHeader() []string {
	return []string{
		"bplog_id", "patient_id", "patient_track_id", "avg_systolic",
		"avg_diastolic", "avg_pulse", "height", "weight", "bmi", "temperature",
		"is_regular_smoker", "cvd_risk_score", "cvd_risk_level", "risk_level",
		"type", "is_latest", "is_active", "is_deleted", "tenant_id",
		"created_by", "updated_by", "created_at", "updated_at",
	}
}

func (b BPLog) Record() []string {
	return []string{
		b.BPLogID, b.PatientID, b.PatientTrackID, fmtInt(b.AvgSystolic),
		fmtInt(b.AvgDiastolic), fmtInt(b.AvgPulse), fmtF(b.Height),
		fmtF(b.Weight), fmtF(b.BMI), fmtF(b.Temperature),
		fmtBool(b.IsRegularSmoker), fmtF(b.CVDRiskScore), b.CVDRiskLevel,
		b.RiskLevel, b.Type, fmtBool(b.IsLatest), fmtBool(b.IsActive),
		fmtBool(b.IsDeleted), b.TenantID, b.CreatedBy, b.UpdatedBy,
		fmtTime(b.CreatedAt), fmtTime(b.UpdatedAt),
	}
}

func BPLogFromRecord(rec []string) (BPLog, error) {
	r := &recScanner{rec: rec}
	b := BPLog{
		BPLogID: r.str(), PatientID: r.str(), PatientTrackID: r.str(),
		AvgSystolic: r.intVal(), AvgDiastolic: r.intVal(), AvgPulse: r.intVal(),
		Height: r.floatVal(), Weight: r.floatVal(), BMI: r.floatVal(),
		Temperature: r.floatVal(), IsRegularSmoker: r.boolVal(),
		CVDRiskScore: r.floatVal(), CVDRiskLevel: r.str(), RiskLevel: r.str(),
		Type: r.str(), IsLatest: r.boolVal(), IsActive: r.boolVal(),
		IsDeleted: r.boolVal(), TenantID: r.str(), CreatedBy: r.str(),
		UpdatedBy: r.str(), CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return b, r.err
}

func GlucoseLogHeader() []string {
	return []string{
		"glucose_log_id", "patient_id", "patient_track_id", "glucose_value",
		"glucose_type", "hba1c", "type", "is_latest", "is_active",
		"is_deleted", "tenant_id", "glucose_date_time", "last_meal_time",
		"created_by", "updated_by", "created_at", "updated_at",
	}
}

func (g GlucoseLog) Record() []string {
	return []string{
		g.GlucoseLogID, g.PatientID, g.PatientTrackID, fmtF(g.GlucoseValue),
		g.GlucoseType, fmtF(g.HbA1c), g.Type, fmtBool(g.IsLatest),
		fmtBool(g.IsActive), fmtBool(g.IsDeleted), g.TenantID,
		fmtTime(g.GlucoseDateTime), fmtTime(g.LastMealTime), g.CreatedBy,
		g.UpdatedBy, fmtTime(g.CreatedAt), fmtTime(g.UpdatedAt),
	}
}

func GlucoseLogFromRecord(rec []string) (GlucoseLog, error) {
	r := &recScanner{rec: rec}
	g := GlucoseLog{
		GlucoseLogID: r.str(), PatientID: r.str(), PatientTrackID: r.str(),
		GlucoseValue: r.floatVal(), GlucoseType: r.str(), HbA1c: r.floatVal(),
		Type: r.str(), IsLatest: r.boolVal(), IsActive: r.boolVal(),
		IsDeleted: r.boolVal(), TenantID: r.str(), GlucoseDateTime: r.timeVal(),
		LastMealTime: r.timeVal(), CreatedBy: r.str(), UpdatedBy: r.str(),
		CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return g, r.err
}

func DiagnosisHeader() []string {
	return []string{
		"patient_diagnosis_id", "patient_id", "patient_track_id",
		"diabetes_year_of_diagnosis", "diabetes_patient_type",
		"htn_patient_type", "diabetes_diagnosis", "htn_year_of_diagnosis",
		"is_diabetes_diagnosis", "is_htn_diagnosis",
		"diabetes_diag_controlled_type", "is_active", "is_deleted",
		"tenant_id", "created_by", "updated_by", "created_at", "updated_at",
	}
}

func (d Diagnosis) Record() []string {
	return []string{
		d.DiagnosisID, d.PatientID, d.PatientTrackID,
		fmtOptInt(d.DiabetesYearOfDiag), d.DiabetesPatientType,
		d.HTNPatientType, fmtOptStr(d.DiabetesDiagnosis),
		fmtOptInt(d.HTNYearOfDiag), fmtBool(d.IsDiabetesDiagnosis),
		fmtBool(d.IsHTNDiagnosis), fmtOptStr(d.DiabetesControlType),
		fmtBool(d.IsActive), fmtBool(d.IsDeleted), d.TenantID, d.CreatedBy,
		d.UpdatedBy, fmtTime(d.CreatedAt), fmtTime(d.UpdatedAt),
	}
}

func DiagnosisFromRecord(rec []string) (Diagnosis, error) {
	r := &recScanner{rec: rec}
	d := Diagnosis{
		DiagnosisID: r.str(), PatientID: r.str(), PatientTrackID: r.str(),
		DiabetesYearOfDiag: r.optInt(), DiabetesPatientType: r.str(),
		HTNPatientType: r.str(), DiabetesDiagnosis: r.optStr(),
		HTNYearOfDiag: r.optInt(), IsDiabetesDiagnosis: r.boolVal(),
		IsHTNDiagnosis: r.boolVal(), DiabetesControlType: r.optStr(),
		IsActive: r.boolVal(), IsDeleted: r.boolVal(), TenantID: r.str(),
		CreatedBy: r.str(), UpdatedBy: r.str(), CreatedAt: r.timeVal(),
		UpdatedAt: r.timeVal(),
	}
	return d, r.err
}

func LifestyleHeader() []string {
	return []string{
		"patient_lifestyle_id", "lifestyle_id", "patient_id",
		"patient_track_id", "lifestyle_name", "lifestyle_answer", "comments",
		"is_active", "is_deleted", "tenant_id", "created_by", "updated_by",
		"created_at", "updated_at",
	}
}

func (l Lifestyle) Record() []string {
	return []string{
		l.LifestyleRecordID, l.LifestyleID, l.PatientID, l.PatientTrackID,
		l.LifestyleName, l.LifestyleAnswer, l.Comments, fmtBool(l.IsActive),
		fmtBool(l.IsDeleted), l.TenantID, l.CreatedBy, l.UpdatedBy,
		fmtTime(l.CreatedAt), fmtTime(l.UpdatedAt),
	}
}

func LifestyleFromRecord(rec []string) (Lifestyle, error) {
	r := &recScanner{rec: rec}
	l := Lifestyle{
		LifestyleRecordID: r.str(), LifestyleID: r.str(), PatientID: r.str(),
		PatientTrackID: r.str(), LifestyleName: r.str(),
		LifestyleAnswer: r.str(), Comments: r.str(), IsActive: r.boolVal(),
		IsDeleted: r.boolVal(), TenantID: r.str(), CreatedBy: r.str(),
		UpdatedBy: r.str(), CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return l, r.err
}

func ComplianceHeader() []string {
	return []string{
		"patient_medical_compliance_id", "compliance_id", "patient_id",
		"name", "compliance_name", "other_compliance", "bplog_id",
		"patient_track_id", "is_active", "is_deleted", "tenant_id",
		"created_by", "updated_by", "created_at", "updated_at",
	}
}

func (c Compliance) Record() []string {
	return []string{
		c.ComplianceRecordID, c.ComplianceID, c.PatientID, fmtOptStr(c.Name),
		c.ComplianceName, fmtOptStr(c.OtherCompliance), c.BPLogID,
		c.PatientTrackID, fmtBool(c.IsActive), fmtBool(c.IsDeleted),
		c.TenantID, c.CreatedBy, c.UpdatedBy, fmtTime(c.CreatedAt),
		fmtTime(c.UpdatedAt),
	}
}

func ComplianceFromRecord(rec []string) (Compliance, error) {
	r := &recScanner{rec: rec}
	c := Compliance{
		ComplianceRecordID: r.str(), ComplianceID: r.str(), PatientID: r.str(),
		Name: r.optStr(), ComplianceName: r.str(), OtherCompliance: r.optStr(),
		BPLogID: r.str(), PatientTrackID: r.str(), IsActive: r.boolVal(),
		IsDeleted: r.boolVal(), TenantID: r.str(), CreatedBy: r.str(),
		UpdatedBy: r.str(), CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return c, r.err
}

func MedicalReviewHeader() []string {
	return []string{
		"patient_medical_review_id", "patient_id", "patient_track_id",
		"patient_visit_id", "clinical_note", "physical_exam_comments",
		"complaint_comments", "is_active", "is_deleted", "tenant_id",
		"created_by", "updated_by", "created_at", "updated_at",
	}
}

func (m MedicalReview) Record() []string {
	return []string{
		m.ReviewID, m.PatientID, m.PatientTrackID, m.PatientVisitID,
		m.ClinicalNote, m.PhysicalExamComment, m.ComplaintComment,
		fmtBool(m.IsActive), fmtBool(m.IsDeleted), m.TenantID, m.CreatedBy,
		m.UpdatedBy, fmtTime(m.CreatedAt), fmtTime(m.UpdatedAt),
	}
}

func MedicalReviewFromRecord(rec []string) (MedicalReview, error) {
	r := &recScanner{rec: rec}
	m := MedicalReview{
		ReviewID: r.str(), PatientID: r.str(), PatientTrackID: r.str(),
		PatientVisitID: r.str(), ClinicalNote: r.str(),
		PhysicalExamComment: r.str(), ComplaintComment: r.str(),
		IsActive: r.boolVal(), IsDeleted: r.boolVal(), TenantID: r.str(),
		CreatedBy: r.str(), UpdatedBy: r.str(), CreatedAt: r.timeVal(),
		UpdatedAt: r.timeVal(),
	}
	return m, r.err
}

func VisitHeader() []string {
	return []string{
		"patient_visit_id", "patient_id", "patient_track_id", "visit_date",
		"is_prescription", "is_investigation", "is_medical_review",
		"patient_treatment_plan", "is_active", "is_deleted", "tenant_id",
		"created_by", "updated_by", "created_at", "updated_at",
	}
}

func (v Visit) Record() []string {
	return []string{
		v.VisitID, v.PatientID, v.PatientTrackID, fmtTime(v.VisitDate),
		fmtBool(v.IsPrescription), fmtBool(v.IsInvestigation),
		fmtBool(v.IsMedicalReview), v.TreatmentPlan, fmtBool(v.IsActive),
		fmtBool(v.IsDeleted), v.TenantID, v.CreatedBy, v.UpdatedBy,
		fmtTime(v.CreatedAt), fmtTime(v.UpdatedAt),
	}
}

func VisitFromRecord(rec []string) (Visit, error) {
	r := &recScanner{rec: rec}
	v := Visit{
		VisitID: r.str(), PatientID: r.str(), PatientTrackID: r.str(),
		VisitDate: r.timeVal(), IsPrescription: r.boolVal(),
		IsInvestigation: r.boolVal(), IsMedicalReview: r.boolVal(),
		TreatmentPlan: r.str(), IsActive: r.boolVal(), IsDeleted: r.boolVal(),
		TenantID: r.str(), CreatedBy: r.str(), UpdatedBy: r.str(),
		CreatedAt: r.timeVal(), UpdatedAt: r.timeVal(),
	}
	return v, r.err
}

func VitalsHeader() []string {
	return []string{
		"patient_id", "timestamp", "glucose", "blood_pressure_systolic",
		"blood_pressure_diastolic", "heart_rate",
	}
}

func (s VitalsSample) Record() []string {
	return []string{
		s.PatientID, fmtTime(s.Timestamp), fmtF(s.Glucose), fmtF(s.Systolic),
		fmtF(s.Diastolic), fmtF(s.HeartRate),
	}
}

func VitalsFromRecord(rec []string) (VitalsSample, error) {
	r := &recScanner{rec: rec}
	s := VitalsSample{
		PatientID: r.str(), Timestamp: r.timeVal(), Glucose: r.floatVal(),
		Systolic: r.floatVal(), Diastolic: r.floatVal(), HeartRate: r.floatVal(),
	}
	return s, r.err
}
