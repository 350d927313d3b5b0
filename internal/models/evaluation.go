package models

import "time"

// DeclarantType identifies who fills in the questionnaire.
type DeclarantType string

const (
	DeclarantPatient             DeclarantType = "PATIENT"
	DeclarantLegalRepresentative DeclarantType = "LEGAL_REPRESENTATIVE"
	DeclarantFamilyMember        DeclarantType = "FAMILY_MEMBER"
)

// AnesthesiaType covers both prior-surgery and dental anesthesia.
type AnesthesiaType string

const (
	AnesthesiaNone     AnesthesiaType = "NONE"
	AnesthesiaLocal    AnesthesiaType = "LOCAL"
	AnesthesiaGeneral  AnesthesiaType = "GENERAL"
	AnesthesiaSedation AnesthesiaType = "SEDATION"
)

// DentalComplicationType classifies complications during prior dental
// treatment.
type DentalComplicationType string

const (
	DentalComplicationNone     DentalComplicationType = "NONE"
	DentalComplicationAllergy  DentalComplicationType = "ALLERGY"
	DentalComplicationFainting DentalComplicationType = "FAINTING"
	DentalComplicationNausea   DentalComplicationType = "NAUSEA"
	DentalComplicationOther    DentalComplicationType = "OTHER"
)

// BisphosphonateRoute is the administration route for bisphosphonate
// treatment, relevant to osteonecrosis risk in oral surgery.
type BisphosphonateRoute string

const (
	BisphosphonateOral        BisphosphonateRoute = "ORAL"
	BisphosphonateIntravenous BisphosphonateRoute = "INTRAVENOUS"
)

// The questionnaire is organized in thematic sections, each a gate
// question ("has condition X?") followed by detail fields. Detail
// fields stay optional regardless of the gate value: the form is
// operator-entered and the system intentionally accepts inconsistent
// gate/detail combinations rather than rejecting a visit record.

type DeclarantSection struct {
	DeclarantType     DeclarantType `gorm:"size:32;default:PATIENT" json:"declarantType"`
	DeclarantName     string        `json:"declarantName"`
	DeclarantRelation string        `json:"declarantRelation"`
}

type PregnancySection struct {
	IsPossiblyPregnant bool `json:"isPossiblyPregnant"`
	PregnancyWeeks     *int `json:"pregnancyWeeks,omitempty"`
	IsInMenstrualCycle bool `json:"isInMenstrualCycle"`
}

type AllergySection struct {
	HasAllergies     bool   `json:"hasAllergies"`
	AllergiesDetails string `json:"allergiesDetails"`
}

type MedicationSection struct {
	IsOnMedication         bool                `json:"isOnMedication"`
	MedicationDetails      string              `json:"medicationDetails"`
	RecentAntibiotics      bool                `json:"recentAntibiotics"`
	AntibioticsDetails     string              `json:"antibioticsDetails"`
	OnAnticoagulants       bool                `json:"onAnticoagulants"`
	AnticoagulantName      string              `json:"anticoagulantName"`
	INRValue               string              `json:"inrValue"`
	OnBisphosphonates      bool                `json:"onBisphosphonates"`
	BisphosphonateName     string              `json:"bisphosphonateName"`
	BisphosphonateRoute    BisphosphonateRoute `gorm:"size:16" json:"bisphosphonateRoute"`
	BisphosphonateDuration string              `json:"bisphosphonateDuration"`
	BetaCrossLaps          string              `json:"betaCrossLaps"`
}

type CardiovascularSection struct {
	HasHeartDisease           bool       `json:"hasHeartDisease"`
	Hypertension              bool       `json:"hypertension"`
	HypertensionBloodPressure string     `json:"hypertensionBloodPressure"`
	HypertensionMedication    string     `json:"hypertensionMedication"`
	Hypotension               bool       `json:"hypotension"`
	HypotensionBloodPressure  string     `json:"hypotensionBloodPressure"`
	HypotensionMedication     string     `json:"hypotensionMedication"`
	AnginaPectoris            bool       `json:"anginaPectoris"`
	MyocardialInfarction      bool       `json:"myocardialInfarction"`
	InfarctionDate            *time.Time `json:"infarctionDate,omitempty"`
	Arrhythmia                bool       `json:"arrhythmia"`
	HeartBlock                bool       `json:"heartBlock"`
	HeartFailure              bool       `json:"heartFailure"`
	NYHAClass                 string     `gorm:"size:8" json:"nyhaClass"`
	Valvulopathy              bool       `json:"valvulopathy"`
	ValvulopathyType          string     `json:"valvulopathyType"`
	InfectiousEndocarditis    bool       `json:"infectiousEndocarditis"`
	CardiacSurgery            bool       `json:"cardiacSurgery"`
	CardiacSurgeryDetails     string     `json:"cardiacSurgeryDetails"`
	OtherHeartConditions      string     `json:"otherHeartConditions"`
}

type VascularSection struct {
	HasVascularDisease       bool       `json:"hasVascularDisease"`
	ObliterativeArteriopathy bool       `json:"obliterativeArteriopathy"`
	Thrombophlebitis         bool       `json:"thrombophlebitis"`
	Stroke                   bool       `json:"stroke"`
	StrokeDate               *time.Time `json:"strokeDate,omitempty"`
	OtherVascularConditions  string     `json:"otherVascularConditions"`
}

type RespiratorySection struct {
	HasRespiratoryDisease      bool   `json:"hasRespiratoryDisease"`
	BronchialAsthma            bool   `json:"bronchialAsthma"`
	ChronicBronchitis          bool   `json:"chronicBronchitis"`
	Emphysema                  bool   `json:"emphysema"`
	Tuberculosis               bool   `json:"tuberculosis"`
	TBTreatment                string `json:"tbTreatment"`
	OtherRespiratoryConditions string `json:"otherRespiratoryConditions"`
}

type DigestiveSection struct {
	HasDigestiveDisease      bool   `json:"hasDigestiveDisease"`
	GastritisUlcer           bool   `json:"gastritisUlcer"`
	OtherDigestiveConditions string `json:"otherDigestiveConditions"`
	HasLiverDisease          bool   `json:"hasLiverDisease"`
	ChronicHepatitis         bool   `json:"chronicHepatitis"`
	Cirrhosis                bool   `json:"cirrhosis"`
	HepaticSteatosis         bool   `json:"hepaticSteatosis"`
	OtherLiverConditions     string `json:"otherLiverConditions"`
}

type RenalSection struct {
	HasKidneyDisease    bool   `json:"hasKidneyDisease"`
	RenalFailure        bool   `json:"renalFailure"`
	OnHemodialysis      bool   `json:"onHemodialysis"`
	HemodialysisDetails string `json:"hemodialysisDetails"`
	HasDiabetes         bool   `json:"hasDiabetes"`
	DiabetesInsulin     bool   `json:"diabetesInsulin"`
	DiabetesOralMeds    bool   `json:"diabetesOralMeds"`
}

type EndocrineSection struct {
	HasEndocrineDisease      bool   `json:"hasEndocrineDisease"`
	Hypothyroidism           bool   `json:"hypothyroidism"`
	Hyperthyroidism          bool   `json:"hyperthyroidism"`
	OtherEndocrineConditions string `json:"otherEndocrineConditions"`
	HasRheumaticDisease      bool   `json:"hasRheumaticDisease"`
	RheumatoidArthritis      bool   `json:"rheumatoidArthritis"`
	Collagenosis             bool   `json:"collagenosis"`
	OtherRheumaticConditions string `json:"otherRheumaticConditions"`
	HasSkeletalDisease       bool   `json:"hasSkeletalDisease"`
	Osteoporosis             bool   `json:"osteoporosis"`
	OtherSkeletalConditions  string `json:"otherSkeletalConditions"`
}

type NeuroPsychiatricSection struct {
	HasNeurologicalDisease      bool   `json:"hasNeurologicalDisease"`
	Epilepsy                    bool   `json:"epilepsy"`
	OtherNeurologicalConditions string `json:"otherNeurologicalConditions"`
	HasPsychiatricDisease       bool   `json:"hasPsychiatricDisease"`
	Depression                  bool   `json:"depression"`
	Schizophrenia               bool   `json:"schizophrenia"`
	PanicAttacks                bool   `json:"panicAttacks"`
	OtherPsychiatricConditions  string `json:"otherPsychiatricConditions"`
}

type HematologicSection struct {
	HasHematologicalDisease      bool   `json:"hasHematologicalDisease"`
	Anemia                       bool   `json:"anemia"`
	Thalassemia                  bool   `json:"thalassemia"`
	Hemophilia                   bool   `json:"hemophilia"`
	VonWillebrandDisease         bool   `json:"vonWillebrandDisease"`
	Thrombocytopenia             bool   `json:"thrombocytopenia"`
	AcuteLeukemia                bool   `json:"acuteLeukemia"`
	ChronicLeukemia              bool   `json:"chronicLeukemia"`
	HadBloodTransfusion          bool   `json:"hadBloodTransfusion"`
	OtherHematologicalConditions string `json:"otherHematologicalConditions"`
	HasInfectiousDisease         bool   `json:"hasInfectiousDisease"`
	HepatitisB                   bool   `json:"hepatitisB"`
	HepatitisC                   bool   `json:"hepatitisC"`
	HepatitisD                   bool   `json:"hepatitisD"`
	HIV                          bool   `json:"hiv"`
	OtherInfectiousConditions    string `json:"otherInfectiousConditions"`
}

type NeoplasmSection struct {
	HasNeoplasm     bool   `json:"hasNeoplasm"`
	NeoplasmDetails string `json:"neoplasmDetails"`
}

type SurgerySection struct {
	HadPreviousSurgery          bool           `json:"hadPreviousSurgery"`
	SurgeryDetails              string         `json:"surgeryDetails"`
	SurgeryAnesthesiaType       AnesthesiaType `gorm:"size:16" json:"surgeryAnesthesiaType"`
	SurgeryComplications        bool           `json:"surgeryComplications"`
	SurgeryComplicationsDetails string         `json:"surgeryComplicationsDetails"`
}

type DentalSection struct {
	HadDentalTreatment         bool                   `json:"hadDentalTreatment"`
	DentalAnesthesiaType       AnesthesiaType         `gorm:"size:16" json:"dentalAnesthesiaType"`
	DentalComplications        bool                   `json:"dentalComplications"`
	DentalComplicationsType    DentalComplicationType `gorm:"size:16" json:"dentalComplicationsType"`
	DentalComplicationsDetails string                 `json:"dentalComplicationsDetails"`
}

type SubstanceSection struct {
	TobaccoUse              bool   `json:"tobaccoUse"`
	TobaccoDetails          string `json:"tobaccoDetails"`
	AlcoholUse              bool   `json:"alcoholUse"`
	AlcoholDetails          string `json:"alcoholDetails"`
	AlcoholWithdrawalIssues bool   `json:"alcoholWithdrawalIssues"`
	DrugUse                 bool   `json:"drugUse"`
	DrugDetails             string `json:"drugDetails"`
}

type DeclarationSection struct {
	OtherDiseases     string     `json:"otherDiseases"`
	DeclarationSigned bool       `json:"declarationSigned"`
	DeclarationDate   *time.Time `json:"declarationDate,omitempty"`
	SignatureImage    string     `gorm:"type:text" json:"signatureImage"`
}

// EvaluationForm is the operator-entered part of an evaluation: every
// questionnaire section plus the free-text doctor notes. Sections are
// embedded anonymously so both the persisted columns and the JSON wire
// shape stay flat.
type EvaluationForm struct {
	EvaluationType          string `gorm:"size:32;index" json:"evaluationType"`
	DeclarantSection        `gorm:"embedded"`
	PregnancySection        `gorm:"embedded"`
	AllergySection          `gorm:"embedded"`
	MedicationSection       `gorm:"embedded"`
	CardiovascularSection   `gorm:"embedded"`
	VascularSection         `gorm:"embedded"`
	RespiratorySection      `gorm:"embedded"`
	DigestiveSection        `gorm:"embedded"`
	RenalSection            `gorm:"embedded"`
	EndocrineSection        `gorm:"embedded"`
	NeuroPsychiatricSection `gorm:"embedded"`
	HematologicSection      `gorm:"embedded"`
	NeoplasmSection         `gorm:"embedded"`
	SurgerySection          `gorm:"embedded"`
	DentalSection           `gorm:"embedded"`
	SubstanceSection        `gorm:"embedded"`
	DoctorNotes             string `gorm:"type:text" json:"doctorNotes"`
	DeclarationSection      `gorm:"embedded"`
}

// Evaluation is one pre-operative medical evaluation of a patient,
// always belonging to the same clinic as the patient. Archived
// evaluations are retained, never hard-deleted.
type Evaluation struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID       string     `gorm:"type:uuid;index;not null" json:"clinicId"`
	PatientID      string     `gorm:"type:uuid;index;not null" json:"patientId"`
	Patient        *Patient   `json:"patient,omitempty"`
	UserID         string     `gorm:"type:uuid;not null" json:"userId"`
	User           *User      `json:"user,omitempty"`
	EvaluationDate time.Time  `gorm:"index" json:"evaluationDate"`
	EvaluationForm `gorm:"embedded"`
	IsArchived     bool       `gorm:"not null;default:false;index" json:"isArchived"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
