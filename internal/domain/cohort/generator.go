package cohort

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/afyalink/afyalink/internal/domain/catalog"
)

// Generator builds one complete dataset from a single seeded random source.
// Every identifier, timestamp, and draw comes from that source, so a fixed
// seed reproduces the snapshot byte for byte.
type Generator struct {
	cfg       GenerationConfig
	rng       *rand.Rand
	kdhs      KDHS2022
	ageRisk   map[string]AgeRiskFactors
	baselines VitalsBaselines
	sites     []catalog.Site
	users     []catalog.User
	locations []catalog.Location

	// pool holds previously generated patients eligible for repeat visits.
	pool []Patient
}

func NewGenerator(cfg GenerationConfig, sites []catalog.Site, users []catalog.User) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		kdhs:      DefaultKDHS2022(),
		ageRisk:   DefaultAgeRiskFactors(),
		baselines: DefaultVitalsBaselines(),
		sites:     sites,
		users:     users,
		locations: catalog.Locations(),
	}
}

// Generate runs the full pipeline. Child tables derive from their parents
// so foreign keys always resolve.
func (g *Generator) Generate() (*Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if len(g.sites) == 0 {
		return nil, fmt.Errorf("cohort: no sites to attach patients to")
	}

	d := &Dataset{Config: g.cfg}
	d.Patients = g.generatePatients()
	d.Screenings = g.generateScreenings(d.Patients)
	d.BPLogs = g.generateBPLogs(d.Screenings)
	d.GlucoseLogs = g.generateGlucoseLogs(d.Screenings)
	d.Diagnoses = g.generateDiagnoses(d.Patients)
	d.Lifestyles = g.generateLifestyles(d.BPLogs)
	d.Compliances = g.generateCompliances(d.BPLogs)
	d.Reviews = g.generateReviews(d.BPLogs)
	d.Visits = g.generateVisits(d.Patients)
	d.Vitals = g.generateVitals(d.Patients)
	return d, nil
}

// ---------------------------------------------------------------------------
// draw helpers
// ---------------------------------------------------------------------------

func (g *Generator) chance(p float64) bool { return g.rng.Float64() < p }

func (g *Generator) norm(mean, std float64) float64 {
	return g.rng.NormFloat64()*std + mean
}

func (g *Generator) normInt(mean, std float64) int {
	return int(math.Round(g.norm(mean, std)))
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) pickWeighted(options []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}

func (g *Generator) weightedCount(counts []int, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return counts[i]
		}
	}
	return counts[len(counts)-1]
}

// newUUID draws a v4 UUID from the seeded source rather than crypto/rand
// so identifiers stay reproducible.
func (g *Generator) newUUID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return id.String()
}

// digits returns an n-digit numeric identifier with a nonzero lead digit.
func (g *Generator) digits(n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + g.rng.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return b.String()
}

func (g *Generator) timeBetween(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(span)))).Truncate(time.Second)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// ---------------------------------------------------------------------------
// patients
// ---------------------------------------------------------------------------

func (g *Generator) generatePatients() []Patient {
	patients := make([]Patient, 0, g.cfg.NumPatients)
	span := g.cfg.End.Sub(g.cfg.Start)
	slot := span / time.Duration(g.cfg.NumPatients)
	if slot <= 0 {
		slot = time.Second
	}

	for i := 0; i < g.cfg.NumPatients; i++ {
		createdAt := g.cfg.Start.Add(time.Duration(i) * slot)
		createdAt = g.timeBetween(createdAt, createdAt.Add(slot))
		updatedAt := g.timeBetween(createdAt, g.cfg.End)

		if g.chance(g.cfg.RepeatRate) && len(g.pool) > 0 {
			p := g.pool[g.rng.Intn(len(g.pool))]
			p.IsRepeatVisit = true
			p.CreatedAt = createdAt
			p.UpdatedAt = updatedAt
			patients = append(patients, p)
			continue
		}

		p := g.newPatient(createdAt, updatedAt)
		g.pool = append(g.pool, p)
		patients = append(patients, p)
	}
	return patients
}

func (g *Generator) newPatient(createdAt, updatedAt time.Time) Patient {
	loc := g.locations[g.rng.Intn(len(g.locations))]
	site := g.sites[g.rng.Intn(len(g.sites))]

	first := g.pick(patientFirstNames)
	last := g.pick(patientLastNames)
	middle := ""
	if g.chance(0.3) {
		middle = g.pick(patientFirstNames)
	}

	age := 25 + g.rng.Intn(56)
	dob := createdAt.AddDate(-age, 0, -g.rng.Intn(365))
	gender := g.pick([]string{"M", "F", "Other"})

	insured := g.chance(0.7)
	insuranceStatus, insuranceType, insuranceID := "None", "None", ""
	if insured {
		insuranceStatus = "Active"
		insuranceType = g.pick(insuranceTypes)
		insuranceID = g.digits(14)
	}

	p := Patient{
		PatientID:           g.digits(9),
		NationalID:          g.digits(14),
		FirstName:           first,
		MiddleName:          middle,
		LastName:            last,
		Initial:             first[:1],
		Gender:              gender,
		DateOfBirth:         dob.Format(DateLayout),
		Age:                 age,
		Occupation:          g.pick(occupations),
		LevelOfEducation:    g.pick(educationLevels),
		IsRegularSmoker:     g.chance(0.5),
		PhoneNumber:         "07" + g.digits(8),
		PhoneNumberCategory: g.pick(phoneCategories),
		CountryID:           "KE",
		CountryName:         "Kenya",
		CountyID:            loc.CountyID,
		CountyName:          loc.CountyName,
		SubCountyID:         loc.SubCountyID,
		SubCountyName:       loc.SubCountyName,
		Landmark:            g.pick(landmarks),
		InsuranceID:         insuranceID,
		InsuranceStatus:     insuranceStatus,
		InsuranceType:       insuranceType,
		ProgramID:           g.newUUID(),
		ProgramName:         g.pick(programNames),
		SiteID:              strconv.Itoa(site.SiteID),
		SiteName:            site.Name,
		IsPregnant:          gender == "F" && age >= 18 && age <= 45 && g.chance(0.5),
		IsSupportGroup:      g.chance(0.5),
		IsActive:            g.chance(0.5),
		IsDeleted:           false,
		TenantID:            g.newUUID(),
		CreatedBy:           g.newUUID(),
		UpdatedBy:           g.newUUID(),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	g.assignConditions(&p)
	return p
}

// assignConditions rolls chronic condition flags from the survey
// prevalence figures, scaled up for the 50+ band.
func (g *Generator) assignConditions(p *Patient) {
	adj := g.ageRisk[AgeBand(p.Age)]

	htnProb := prevalenceFor(g.kdhs.Hypertension, p.Gender) * adj.HypertensionAdj
	if g.chance(htnProb) {
		p.HasHypertension = true
		p.OnHTNTreatment = g.chance(treatmentFor(g.kdhs.Hypertension, p.Gender))
	}

	// Diabetes prevalence is reported per age band, not per gender.
	diabProb := g.kdhs.Diabetes.PrevalenceF * adj.DiabetesAdj
	if g.chance(diabProb) {
		p.HasDiabetes = true
		p.OnDiabetesTreatment = g.chance(treatmentFor(g.kdhs.Diabetes, p.Gender))
	}

	mhProb := prevalenceFor(g.kdhs.MentalHealth, p.Gender)
	if g.chance(mhProb) {
		p.HasMentalHealthIssue = true
		p.OnMHTreatment = g.chance(treatmentFor(g.kdhs.MentalHealth, p.Gender))
	}
}

func prevalenceFor(r ConditionRates, gender string) float64 {
	switch gender {
	case "F":
		return r.PrevalenceF
	case "M":
		return r.PrevalenceM
	default:
		return 0
	}
}

func treatmentFor(r ConditionRates, gender string) float64 {
	if gender == "F" {
		return r.TreatmentF
	}
	return r.TreatmentM
}

// ---------------------------------------------------------------------------
// screenings
// ---------------------------------------------------------------------------

func (g *Generator) generateScreenings(patients []Patient) []Screening {
	screenings := make([]Screening, 0, len(patients))
	for _, p := range patients {
		date := g.timeBetween(p.CreatedAt, g.cfg.End)
		height := round1(g.norm(170, 10))
		weight := round1(g.norm(70, 15))
		bmi := round1(weight / math.Pow(height/100, 2))

		isHypertensive := g.chance(0.3)
		sysStd, diaStd := 15.0, 10.0
		if isHypertensive {
			sysStd, diaStd = 25.0, 15.0
		}
		systolic := g.normInt(120, sysStd)
		diastolic := g.normInt(80, diaStd)

		isDiabetic := g.chance(0.2)
		glucoseStd := 20.0
		if isDiabetic {
			glucoseStd = 40.0
		}
		glucose := round1(g.norm(100, glucoseStd))

		cvdScore := math.Round(float64(p.Age)/10 +
			b2f(isHypertensive)*5 + b2f(isDiabetic)*3 +
			b2f(p.IsRegularSmoker)*2 + g.norm(0, 3))
		if cvdScore < 0 {
			cvdScore = 0
		}
		cvdLevel := "High"
		switch {
		case cvdScore < 10:
			cvdLevel = "Low"
		case cvdScore < 20:
			cvdLevel = "Medium"
		}

		phq4 := g.rng.Intn(13)
		phq4Level := "Severe"
		switch {
		case phq4 < 3:
			phq4Level = "None"
		case phq4 < 6:
			phq4Level = "Mild"
		case phq4 < 9:
			phq4Level = "Moderate"
		}

		screenings = append(screenings, Screening{
			ScreeningID:          g.newUUID(),
			PatientID:            p.PatientID,
			FirstName:            p.FirstName,
			LastName:             p.LastName,
			MiddleName:           p.MiddleName,
			Gender:               p.Gender,
			DateOfBirth:          p.DateOfBirth,
			Age:                  p.Age,
			NationalID:           p.NationalID,
			Height:               height,
			Weight:               weight,
			BMI:                  bmi,
			AvgSystolic:          systolic,
			AvgDiastolic:         diastolic,
			AvgPulse:             g.normInt(75, 10),
			GlucoseValue:         glucose,
			GlucoseType:          g.pick([]string{"fasting", "random"}),
			GlucoseDateTime:      date,
			LastMealTime:         date.Add(-time.Duration(1+g.rng.Intn(6)) * time.Hour),
			IsBeforeDiabetesDiag: isDiabetic && g.chance(0.5),
			IsBeforeHTNDiag:      isHypertensive && g.chance(0.5),
			IsRegularSmoker:      p.IsRegularSmoker,
			CVDRiskScore:         cvdScore,
			CVDRiskLevel:         cvdLevel,
			PHQ4Score:            phq4,
			PHQ4RiskLevel:        phq4Level,
			ReferAssessment:      cvdLevel != "Low" || phq4Level == "Moderate" || phq4Level == "Severe",
			CountryID:            p.CountryID,
			CountyID:             p.CountyID,
			SubCountyID:          p.SubCountyID,
			SiteID:               p.SiteID,
			SiteName:             p.SiteName,
			Latitude:             round6(g.rng.Float64()*2 - 1),
			Longitude:            round6(36 + g.rng.Float64()*2),
			PhoneNumber:          p.PhoneNumber,
			Type:                 g.pick([]string{"Inpatient", "Outpatient"}),
			Category:             g.pick([]string{"Community", "Facility"}),
			IsLatest:             true,
			IsActive:             true,
			IsDeleted:            false,
			TenantID:             p.TenantID,
			CreatedBy:            p.CreatedBy,
			UpdatedBy:            p.UpdatedBy,
			CreatedAt:            date,
			UpdatedAt:            date,
		})
	}
	return screenings
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// vitals logs
// ---------------------------------------------------------------------------

func (g *Generator) generateBPLogs(screenings []Screening) []BPLog {
	var logs []BPLog
	for _, s := range screenings {
		trackID := g.newUUID()
		n := 1 + g.rng.Intn(3)
		for reading := 0; reading < n; reading++ {
			readingTime := g.timeBetween(s.CreatedAt, g.cfg.End)
			logs = append(logs, BPLog{
				BPLogID:         g.newUUID(),
				PatientID:       s.PatientID,
				PatientTrackID:  trackID,
				AvgSystolic:     g.normInt(float64(s.AvgSystolic), 5),
				AvgDiastolic:    g.normInt(float64(s.AvgDiastolic), 3),
				AvgPulse:        g.normInt(float64(s.AvgPulse), 2),
				Height:          s.Height,
				Weight:          s.Weight,
				BMI:             s.BMI,
				Temperature:     round1(g.norm(36.5, 0.5)),
				IsRegularSmoker: s.IsRegularSmoker,
				CVDRiskScore:    s.CVDRiskScore,
				CVDRiskLevel:    s.CVDRiskLevel,
				RiskLevel:       s.CVDRiskLevel,
				Type:            s.Type,
				IsLatest:        reading == 0,
				IsActive:        true,
				IsDeleted:       false,
				TenantID:        s.TenantID,
				CreatedBy:       s.CreatedBy,
				UpdatedBy:       s.UpdatedBy,
				CreatedAt:       readingTime,
				UpdatedAt:       readingTime,
			})
		}
	}
	return logs
}

func (g *Generator) generateGlucoseLogs(screenings []Screening) []GlucoseLog {
	var logs []GlucoseLog
	for _, s := range screenings {
		trackID := g.newUUID()
		n := 1 + g.rng.Intn(2)
		for reading := 0; reading < n; reading++ {
			readingTime := g.timeBetween(s.CreatedAt, g.cfg.End)
			logs = append(logs, GlucoseLog{
				GlucoseLogID:    g.newUUID(),
				PatientID:       s.PatientID,
				PatientTrackID:  trackID,
				GlucoseValue:    round1(g.norm(s.GlucoseValue, 5)),
				GlucoseType:     s.GlucoseType,
				HbA1c:           round1(g.norm(5.5+(s.GlucoseValue-100)/50, 0.5)),
				Type:            s.Type,
				IsLatest:        reading == 0,
				IsActive:        true,
				IsDeleted:       false,
				TenantID:        s.TenantID,
				GlucoseDateTime: readingTime,
				LastMealTime:    s.LastMealTime,
				CreatedBy:       s.CreatedBy,
				UpdatedBy:       s.UpdatedBy,
				CreatedAt:       readingTime,
				UpdatedAt:       readingTime,
			})
		}
	}
	return logs
}

// ---------------------------------------------------------------------------
// diagnoses
// ---------------------------------------------------------------------------

func (g *Generator) generateDiagnoses(patients []Patient) []Diagnosis {
	var diagnoses []Diagnosis
	for _, p := range patients {
		n := g.weightedCount([]int{1, 2}, []float64{0.85, 0.15})
		for i := 0; i < n; i++ {
			diagnoses = append(diagnoses, g.newDiagnosis(p))
		}
	}
	return diagnoses
}

func (g *Generator) newDiagnosis(p Patient) Diagnosis {
	diagTime := g.timeBetween(p.CreatedAt, g.cfg.End)
	hasDiabetes := g.chance(0.05 + float64(p.Age)/1000)
	hasHTN := g.chance(0.15 + float64(p.Age)/500)

	d := Diagnosis{
		DiagnosisID:         g.newUUID(),
		PatientID:           p.PatientID,
		PatientTrackID:      g.newUUID(),
		DiabetesPatientType: "Unknown status",
		HTNPatientType:      "Unknown status",
		IsDiabetesDiagnosis: hasDiabetes,
		IsHTNDiagnosis:      hasHTN,
		IsActive:            g.chance(0.9),
		IsDeleted:           false,
		TenantID:            p.TenantID,
		CreatedBy:           p.CreatedBy,
		UpdatedBy:           p.UpdatedBy,
		CreatedAt:           diagTime,
		UpdatedAt:           diagTime,
	}

	if hasDiabetes {
		year := p.CreatedAt.Year() - g.rng.Intn(11)
		diabType := g.pick(diabetesTypes)
		control := g.pick(diabetesControlTypes)
		d.DiabetesYearOfDiag = &year
		d.DiabetesDiagnosis = &diabType
		d.DiabetesPatientType = g.pick(diabetesPatientTypes)
		d.DiabetesControlType = &control
	}
	if hasHTN {
		year := p.CreatedAt.Year() - g.rng.Intn(11)
		d.HTNYearOfDiag = &year
		d.HTNPatientType = g.pick(htnPatientTypes)
	}
	return d
}

// ---------------------------------------------------------------------------
// lifestyle and compliance
// ---------------------------------------------------------------------------

func (g *Generator) generateLifestyles(bpLogs []BPLog) []Lifestyle {
	var lifestyles []Lifestyle
	for _, log := range bpLogs {
		n := 1 + g.rng.Intn(4)
		for i := 0; i < n; i++ {
			lifestyles = append(lifestyles, g.newLifestyle(log))
		}
	}
	return lifestyles
}

func (g *Generator) newLifestyle(log BPLog) Lifestyle {
	createdAt := g.timeBetween(log.CreatedAt, g.cfg.End)
	updatedAt := g.timeBetween(createdAt, g.cfg.End)

	l := Lifestyle{
		LifestyleRecordID: g.newUUID(),
		LifestyleID:       g.newUUID(),
		PatientID:         log.PatientID,
		PatientTrackID:    log.PatientTrackID,
		IsActive:          g.chance(0.9),
		IsDeleted:         false,
		TenantID:          log.TenantID,
		CreatedBy:         log.CreatedBy,
		UpdatedBy:         log.UpdatedBy,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}

	// Roughly a third of entries are risk behaviour questions; the rest
	// record advice given and how the patient is following it.
	if g.chance(0.35) {
		l.LifestyleName = g.pick(riskHabits)
		l.LifestyleAnswer = g.pick(riskHabitAnswers)
		l.Comments = "Risk behaviour captured during routine assessment."
		return l
	}

	category := g.pick(lifestyleCategoryNames)
	name := g.pick(lifestyleCategories[category])
	answer := g.pick(lifestyleAnswers)
	comments := fmt.Sprintf(lifestyleComments[category], strings.ToLower(name))
	switch answer {
	case "Not following":
		comments += " Patient requires additional support and motivation."
	case "Following as recommended":
		comments += " Patient demonstrates good compliance."
	}
	l.LifestyleName = name
	l.LifestyleAnswer = answer
	l.Comments = comments
	return l
}

func (g *Generator) generateCompliances(bpLogs []BPLog) []Compliance {
	var compliances []Compliance
	for _, log := range bpLogs {
		n := g.weightedCount([]int{1, 2, 3, 4, 5}, []float64{0.3, 0.3, 0.2, 0.1, 0.1})
		for i := 0; i < n; i++ {
			compliances = append(compliances, g.newCompliance(log))
		}
	}
	return compliances
}

func (g *Generator) newCompliance(log BPLog) Compliance {
	createdAt := g.timeBetween(log.CreatedAt, g.cfg.End)
	updatedAt := g.timeBetween(createdAt, g.cfg.End)

	c := Compliance{
		ComplianceRecordID: g.newUUID(),
		ComplianceID:       g.newUUID(),
		PatientID:          log.PatientID,
		BPLogID:            log.BPLogID,
		PatientTrackID:     log.PatientTrackID,
		IsActive:           g.chance(0.8),
		IsDeleted:          false,
		TenantID:           log.TenantID,
		CreatedBy:          log.CreatedBy,
		UpdatedBy:          log.UpdatedBy,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}

	if g.chance(0.7) {
		med := g.pick(commonMedications)
		c.Name = &med
		c.ComplianceName = "Medication Adherence"
		if g.chance(0.25) {
			note := g.pick(missedDosePhrases)
			c.OtherCompliance = &note
		} else if g.chance(0.3) {
			note := g.pick(adherencePhrases)
			c.OtherCompliance = &note
		}
		return c
	}

	c.ComplianceName = g.pick(complianceTypes[1:])
	if g.chance(0.3) {
		note := g.pick(adherencePhrases)
		c.OtherCompliance = &note
	}
	return c
}

// ---------------------------------------------------------------------------
// medical reviews and visits
// ---------------------------------------------------------------------------

func (g *Generator) generateReviews(bpLogs []BPLog) []MedicalReview {
	var reviews []MedicalReview
	for _, log := range bpLogs {
		n := g.weightedCount([]int{1, 2, 3, 4, 5}, []float64{0.4, 0.3, 0.15, 0.1, 0.05})
		for i := 0; i < n; i++ {
			reviews = append(reviews, g.newReview(log, g.newUUID()))
		}
	}
	return reviews
}

func (g *Generator) newReview(log BPLog, visitID string) MedicalReview {
	reviewTime := g.timeBetween(g.cfg.Start, g.cfg.End)

	note := g.pick(clinicalNotes)
	lower := strings.ToLower(note)
	if strings.Contains(lower, "stable") && g.chance(0.3) {
		note += " Continue current management plan."
	} else if strings.Contains(lower, "worsening") {
		if g.chance(0.5) {
			note += " Consider specialist referral."
		} else {
			note += " Adjust medications as needed."
		}
	}

	exam := g.pick(physicalExamComments)
	if exam == physicalExamComments[0] {
		bp := fmt.Sprintf("%d/%d", 100+g.rng.Intn(81), 60+g.rng.Intn(41))
		exam = fmt.Sprintf(physicalExamComments[0], bp, 50+g.rng.Intn(51),
			12+g.rng.Intn(9), round1(36.1+g.rng.Float64()*2.1))
	}

	complaint := g.pick(complaintComments)
	if !strings.Contains(complaint, "No new complaints") && g.chance(0.6) {
		complaint += fmt.Sprintf(" Started %d days ago.", 1+g.rng.Intn(14))
	}

	return MedicalReview{
		ReviewID:            g.newUUID(),
		PatientID:           log.PatientID,
		PatientTrackID:      log.PatientTrackID,
		PatientVisitID:      visitID,
		ClinicalNote:        note,
		PhysicalExamComment: exam,
		ComplaintComment:    complaint,
		IsActive:            g.chance(0.85),
		IsDeleted:           false,
		TenantID:            log.TenantID,
		CreatedBy:           log.CreatedBy,
		UpdatedBy:           log.UpdatedBy,
		CreatedAt:           reviewTime,
		UpdatedAt:           reviewTime,
	}
}

func (g *Generator) generateVisits(patients []Patient) []Visit {
	var visits []Visit
	for _, p := range patients {
		n := 1 + g.rng.Intn(5)
		for i := 0; i < n; i++ {
			visits = append(visits, g.newVisit(p))
		}
	}
	return visits
}

func (g *Generator) newVisit(p Patient) Visit {
	visitType := g.pickWeighted(
		[]string{"prescription", "investigation", "medical_review", "mixed"},
		[]float64{0.4, 0.3, 0.2, 0.1})

	visitDate := g.timeBetween(p.CreatedAt, g.cfg.End)
	createdAt := visitDate.Add(time.Duration(5+g.rng.Intn(56)) * time.Minute)
	updatedAt := createdAt.AddDate(0, 0, g.rng.Intn(31))

	actor := g.newUUID()
	if len(g.users) > 0 {
		actor = strconv.Itoa(g.users[g.rng.Intn(len(g.users))].ID)
	}

	return Visit{
		VisitID:         g.newUUID(),
		PatientID:       p.PatientID,
		PatientTrackID:  g.newUUID(),
		VisitDate:       visitDate,
		IsPrescription:  visitType == "prescription" || visitType == "mixed",
		IsInvestigation: visitType == "investigation" || visitType == "mixed",
		IsMedicalReview: visitType == "medical_review" || visitType == "mixed",
		TreatmentPlan:   g.pick(visitTreatmentPlans[visitType]),
		IsActive:        g.chance(0.9),
		IsDeleted:       g.chance(0.05),
		TenantID:        p.TenantID,
		CreatedBy:       actor,
		UpdatedBy:       actor,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// continuous health metrics
// ---------------------------------------------------------------------------

// generateVitals emits one time series per distinct patient. Repeat visit
// rows share a patient id and would otherwise double the series.
func (g *Generator) generateVitals(patients []Patient) []VitalsSample {
	interval := g.cfg.SampleInterval()
	periods := g.cfg.Days()
	if g.cfg.Frequency == FrequencyHourly {
		periods *= 24
	}

	seen := make(map[string]bool, len(patients))
	var samples []VitalsSample
	for _, p := range patients {
		if seen[p.PatientID] {
			continue
		}
		seen[p.PatientID] = true

		ts := g.cfg.Start
		for i := 0; i < periods; i++ {
			s := VitalsSample{
				PatientID: p.PatientID,
				Timestamp: ts,
				Glucose:   g.metricValue(g.baselines.Glucose, b2f(p.HasDiabetes)*20),
				Systolic:  g.metricValue(g.baselines.Systolic, b2f(p.HasHypertension)*15),
				Diastolic: g.metricValue(g.baselines.Diastolic, b2f(p.HasHypertension)*15),
				HeartRate: g.metricValue(g.baselines.HeartRate, 0),
			}
			g.injectAnomalies(&s)
			g.applyBehavior(&s, p.Age, p.IsRegularSmoker)
			s.Glucose = round1(s.Glucose)
			s.Systolic = round1(s.Systolic)
			s.Diastolic = round1(s.Diastolic)
			s.HeartRate = round1(s.HeartRate)
			samples = append(samples, s)
			ts = ts.Add(interval)
		}
	}
	return samples
}

func (g *Generator) metricValue(b MetricBaseline, meanShift float64) float64 {
	return g.norm(b.Mean+meanShift, b.StdDev)
}

// injectAnomalies pushes individual readings into clinically alarming
// ranges at the configured rate, independently per metric.
func (g *Generator) injectAnomalies(s *VitalsSample) {
	rate := g.cfg.AnomalyRate
	if g.chance(rate) {
		s.Glucose = math.Min(500, math.Max(70, s.Glucose*1.8))
	}
	if g.chance(rate) {
		s.Systolic = math.Min(220, s.Systolic*1.4)
	}
	if g.chance(rate) {
		s.Diastolic = math.Min(120, s.Diastolic*1.4)
	}
	if g.chance(rate) {
		if g.chance(0.5) {
			s.HeartRate *= 1.5
		} else {
			s.HeartRate *= 0.7
		}
	}
}
