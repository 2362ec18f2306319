package cohort

// ConditionRates holds prevalence and treatment probabilities for one
// chronic condition, keyed the way KDHS 2022 reports them.
type ConditionRates struct {
	// Prevalence by gender for the 15-49 band. Genders outside M/F fall
	// back to zero prevalence.
	PrevalenceF float64
	PrevalenceM float64
	// Treatment rate given diagnosis, by gender.
	TreatmentF float64
	TreatmentM float64
}

// KDHS2022 carries the Kenya Demographic and Health Survey 2022 figures
// the condition assignment draws from.
type KDHS2022 struct {
	Hypertension ConditionRates
	Diabetes     ConditionRates
	HeartDisease ConditionRates
	MentalHealth ConditionRates
}

// AgeRiskFactors multiplies condition prevalence for the 50+ band.
type AgeRiskFactors struct {
	HypertensionAdj float64
	DiabetesAdj     float64
}

func DefaultKDHS2022() KDHS2022 {
	return KDHS2022{
		Hypertension: ConditionRates{PrevalenceF: 0.09, PrevalenceM: 0.03, TreatmentF: 0.32, TreatmentM: 0.32},
		Diabetes:     ConditionRates{PrevalenceF: 0.01, PrevalenceM: 0.01, TreatmentF: 0.63, TreatmentM: 0.73},
		HeartDisease: ConditionRates{PrevalenceF: 0.01, PrevalenceM: 0.01, TreatmentF: 0.43, TreatmentM: 0.30},
		MentalHealth: ConditionRates{PrevalenceF: 0.04, PrevalenceM: 0.03, TreatmentF: 0.27, TreatmentM: 0.21},
	}
}

func DefaultAgeRiskFactors() map[string]AgeRiskFactors {
	return map[string]AgeRiskFactors{
		"15-49": {HypertensionAdj: 1.0, DiabetesAdj: 1.0},
		"50+":   {HypertensionAdj: 2.5, DiabetesAdj: 3.0},
	}
}

// AgeBand returns the KDHS band for an age. Everyone at or under 49 falls
// in the 15-49 band.
func AgeBand(age int) string {
	if age <= 49 {
		return "15-49"
	}
	return "50+"
}

// MetricBaseline is a named Gaussian for one continuous vitals metric.
type MetricBaseline struct {
	Mean   float64
	StdDev float64
}

// VitalsBaselines carries the resting distributions for the continuous
// metrics time series.
type VitalsBaselines struct {
	Glucose   MetricBaseline
	Systolic  MetricBaseline
	Diastolic MetricBaseline
	HeartRate MetricBaseline
}

func DefaultVitalsBaselines() VitalsBaselines {
	return VitalsBaselines{
		Glucose:   MetricBaseline{Mean: 100, StdDev: 20},
		Systolic:  MetricBaseline{Mean: 120, StdDev: 10},
		Diastolic: MetricBaseline{Mean: 80, StdDev: 5},
		HeartRate: MetricBaseline{Mean: 75, StdDev: 8},
	}
}

var educationLevels = []string{
	"No formal education", "Primary", "Secondary", "College", "University", "Postgraduate",
}

var insuranceTypes = []string{
	"NHIF", "Private", "Community-Based", "Employer-Based",
}

var phoneCategories = []string{"Personal", "Work", "Family", "Emergency"}

var programNames = []string{"Diabetes Care", "Hypertension Management", "General Wellness"}

var occupations = []string{
	"Farmer", "Teacher", "Trader", "Driver", "Tailor", "Fisherman", "Mason",
	"Shopkeeper", "Mechanic", "Casual Labourer", "Clerk", "Boda Boda Rider",
	"Nurse Aide", "Carpenter", "Hairdresser", "Security Guard",
}

var diabetesTypes = []string{"Type 1", "Type 2", "Gestational", "Prediabetes", "Other"}

var diabetesPatientTypes = []string{"Newly diagnosed", "Known diabetic", "Unknown status"}

// diabetesControlTypes includes the uncontrolled marker the classifier
// keys on alongside the survey wording.
var diabetesControlTypes = []string{
	"Well controlled", "Moderately controlled", "Poorly controlled", "Uncontrolled", "Unknown",
}

var htnPatientTypes = []string{"Newly diagnosed", "Known hypertensive", "Unknown status"}

// lifestyleCategories maps advice categories to their recommendation pool.
var lifestyleCategories = map[string][]string{
	"Diet": {
		"Reduce salt intake", "Increase vegetable consumption", "Reduce sugar intake",
		"Follow Mediterranean diet", "Low-carb diet", "Portion control",
	},
	"Exercise": {
		"30 minutes walking daily", "Aerobic exercise 3x/week", "Strength training 2x/week",
		"Yoga practice", "Swimming weekly", "Cycling regimen",
	},
	"Substance Use": {
		"Smoking cessation", "Reduce alcohol consumption", "Caffeine reduction",
		"Drug abstinence", "Nicotine replacement therapy",
	},
	"Sleep": {
		"Sleep hygiene improvement", "Regular sleep schedule", "Reduce screen time before bed",
		"Treat sleep apnea", "Relaxation techniques",
	},
	"Stress Management": {
		"Meditation practice", "Deep breathing exercises", "Counseling sessions",
		"Work-life balance", "Time management",
	},
	"Other": {
		"Regular health checkups", "Medication adherence", "Weight management",
		"Blood pressure monitoring", "Blood sugar monitoring",
	},
}

var lifestyleCategoryNames = []string{
	"Diet", "Exercise", "Substance Use", "Sleep", "Stress Management", "Other",
}

var lifestyleComments = map[string]string{
	"Diet":              "Nutritional counseling provided with focus on %s. Meal planning resources offered.",
	"Exercise":          "Physical activity plan developed emphasizing %s. Follow-up scheduled to assess progress.",
	"Substance Use":     "Harm reduction strategies discussed for %s. Support resources provided.",
	"Sleep":             "Sleep improvement plan created targeting %s. Sleep diary recommended.",
	"Stress Management": "Stress reduction techniques taught including %s. Follow-up scheduled.",
	"Other":             "Health maintenance guidance provided regarding %s. Educational materials shared.",
}

var lifestyleAnswers = []string{
	"Following as recommended", "Partially following", "Not following", "Needs improvement",
	"Exceeding recommendations", "Recently started", "Consistently maintained",
}

// riskHabits are the screening questions whose "Yes" answers flag a
// high-risk lifestyle.
var riskHabits = []string{
	"Smoking", "Alcohol", "Sedentary", "High salt diet", "High sugar diet",
}

var riskHabitAnswers = []string{"Yes", "No", "Occasionally"}

var commonMedications = []string{
	"Hydrochlorothiazide", "Chlorthalidone", "Indapamide", "Furosemide",
	"Spironolactone", "Eplerenone",
	"Metoprolol", "Atenolol", "Propranolol", "Bisoprolol", "Carvedilol",
	"Lisinopril", "Enalapril", "Ramipril", "Benazepril",
	"Losartan", "Valsartan", "Irbesartan", "Telmisartan",
	"Amlodipine", "Diltiazem", "Verapamil", "Nifedipine",
	"Metformin", "Glimepiride", "Glipizide", "Glyburide", "Gliclazide",
	"Glibenclamide", "Sitagliptin", "Saxagliptin", "Linagliptin",
	"Empagliflozin", "Dapagliflozin", "Canagliflozin",
	"Insulin Lispro", "Insulin Aspart", "Insulin Glargine", "Insulin Detemir",
	"NPH Insulin",
	"Liraglutide", "Semaglutide", "Dulaglutide",
	"Aspirin", "Clopidogrel", "Ticagrelor", "Warfarin", "Rivaroxaban",
	"Apixaban", "Dabigatran",
	"Atorvastatin", "Simvastatin", "Rosuvastatin", "Pravastatin",
	"Nitroglycerin", "Isosorbide Mononitrate", "Isosorbide Dinitrate",
	"Sacubitril/Valsartan",
	"Fluoxetine", "Sertraline", "Escitalopram", "Paroxetine", "Duloxetine",
	"Venlafaxine", "Amitriptyline", "Imipramine", "Bupropion", "Mirtazapine",
	"Lorazepam", "Diazepam", "Clonazepam", "Alprazolam", "Buspirone",
	"Quetiapine", "Aripiprazole", "Lithium", "Valproate",
}

var complianceTypes = []string{
	"Medication Adherence",
	"Dietary Compliance",
	"Exercise Regimen",
	"Appointment Attendance",
	"Self-Monitoring",
	"Lifestyle Modification",
}

// missedDosePhrases feed the non-compliance rule: any adherence record
// whose free text contains "Missed" counts as non-compliant.
var missedDosePhrases = []string{
	"Missed doses twice this week",
	"Missed morning dose repeatedly",
	"Missed refill appointment, ran out of medication",
}

var adherencePhrases = []string{
	"Taking medication as prescribed",
	"No missed doses reported",
	"Using pillbox organizer consistently",
}

var clinicalNotes = []string{
	"Patient presents with stable condition and reports good medication adherence.",
	"Mild symptoms reported but overall condition well-managed.",
	"Symptoms worsening, considering medication adjustment.",
	"New symptoms reported, requires further investigation.",
	"Excellent response to current treatment regimen.",
	"Patient experiencing side effects from current medications.",
	"Condition stable but lifestyle modifications needed.",
	"Acute exacerbation noted, immediate intervention required.",
	"Follow-up scheduled to monitor progress.",
	"Patient non-compliant with prescribed treatment.",
}

var physicalExamComments = []string{
	"BP: %s, HR: %d, RR: %d, Temp: %.1f. No acute distress.",
	"General appearance: Well-developed, well-nourished. No acute distress.",
	"Cardiovascular: Regular rate and rhythm, no murmurs.",
	"Respiratory: Clear to auscultation bilaterally.",
	"Abdomen: Soft, non-tender, non-distended.",
	"Extremities: No edema, pulses 2+ throughout.",
	"Neurologic: Alert and oriented x3, no focal deficits.",
	"Skin: Warm and dry, no rashes or lesions.",
	"HEENT: Normocephalic, atraumatic. PERRLA. Mucous membranes moist.",
	"Musculoskeletal: No joint swelling or tenderness.",
}

var complaintComments = []string{
	"Reports occasional headaches relieved with medication.",
	"No new complaints since last visit.",
	"Complains of increased fatigue and dizziness.",
	"Reports improved energy levels with current treatment.",
	"Experiencing intermittent chest discomfort.",
	"Shortness of breath with moderate exertion.",
	"Frequent urination and increased thirst reported.",
	"Joint pain and stiffness in mornings.",
	"Sleep disturbances and anxiety symptoms.",
	"No specific complaints today.",
}

var visitTreatmentPlans = map[string][]string{
	"prescription": {
		"Prescribed medication for condition",
		"Refilled existing prescriptions",
		"Adjusted medication dosage",
	},
	"investigation": {
		"Ordered lab tests",
		"Referred for imaging",
		"Recommended diagnostic procedures",
	},
	"medical_review": {
		"Follow-up assessment",
		"Chronic condition management",
		"Progress evaluation",
	},
	"mixed": {
		"Comprehensive treatment plan",
		"Multi-disciplinary approach",
		"Integrated care plan",
	},
}

var patientFirstNames = []string{
	"Wanjiku", "Otieno", "Achieng", "Kamau", "Mutua", "Chebet", "Kiprop",
	"Nyambura", "Omondi", "Wafula", "Atieno", "Njoroge", "Mwangi", "Akinyi",
	"Kiptoo", "Wambui", "Barasa", "Nekesa", "Maina", "Adhiambo", "Kilonzo",
	"Moraa", "Gitau", "Jepkorir", "Ochieng", "Wairimu", "Mutiso",
	"Chepkemoi", "Karanja", "Awino", "Halima", "Fatuma", "Juma", "Salim",
	"Amina", "Baraka", "Zawadi", "Pendo", "Neema", "Imani",
}

var patientLastNames = []string{
	"Mwangi", "Odhiambo", "Kariuki", "Wanjala", "Mutinda", "Koech", "Njeri",
	"Oduya", "Kimani", "Simiyu", "Onyango", "Githinji", "Langat", "Okoth",
	"Ndegwa", "Juma", "Cheruiyot", "Obara", "Macharia", "Were", "Musyoka",
	"Nyong'o", "Kibet", "Oloo", "Abdalla", "Hassan", "Omar", "Said",
}

var landmarks = []string{
	"Near the market", "Opposite the primary school", "Next to the chief's camp",
	"Behind the bus stage", "Along the main tarmac road", "Near the river crossing",
	"Next to the cereals depot", "Opposite the petrol station",
}
