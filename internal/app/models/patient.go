package models

import "time"

type RegistrationType string

const (
	RegistrationTypeOPD RegistrationType = "OPD"
	RegistrationTypeAE  RegistrationType = "A&E"
)

type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
	PatientStatusDeceased PatientStatus = "deceased"
)

type SeverityLevel string

const (
	SeverityLevelCritical SeverityLevel = "Critical"
	SeverityLevelSerious  SeverityLevel = "Serious"
	SeverityLevelModerate SeverityLevel = "Moderate"
	SeverityLevelStable   SeverityLevel = "Stable"
)

type ArrivalMode string

const (
	ArrivalModeAmbulance ArrivalMode = "Ambulance"
	ArrivalModeWalkIn    ArrivalMode = "Walk-in"
	ArrivalModePolice    ArrivalMode = "Police"
	ArrivalModeOthers    ArrivalMode = "Others"
)

type PersonalInfo struct {
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender      string    `json:"gender" bson:"gender"`
	BloodGroup  string    `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
}

func (p PersonalInfo) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

type ContactInfo struct {
	Email   string  `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string  `json:"phone" bson:"phone"`
	Address Address `json:"address" bson:"address"`
}

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	Phone        string `json:"phone" bson:"phone"`
}

type PastSurgery struct {
	SurgeryType string     `json:"surgeryType" bson:"surgeryType"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Hospital    string     `json:"hospital,omitempty" bson:"hospital,omitempty"`
}

type MedicalHistory struct {
	Allergies          []string      `json:"allergies" bson:"allergies"`
	ChronicConditions  []string      `json:"chronicConditions" bson:"chronicConditions"`
	CurrentMedications []string      `json:"currentMedications" bson:"currentMedications"`
	PastSurgeries      []PastSurgery `json:"pastSurgeries" bson:"pastSurgeries"`
}

type VitalSigns struct {
	BloodPressure    string  `json:"bloodPressure" bson:"bloodPressure"`
	PulseRate        int     `json:"pulseRate" bson:"pulseRate"`
	Temperature      float64 `json:"temperature" bson:"temperature"`
	OxygenSaturation int     `json:"oxygenSaturation" bson:"oxygenSaturation"`
}

type EmergencyDetails struct {
	InjuryType     string        `json:"injuryType" bson:"injuryType"`
	ArrivalMode    ArrivalMode   `json:"arrivalMode" bson:"arrivalMode"`
	ChiefComplaint string        `json:"chiefComplaint" bson:"chiefComplaint"`
	VitalSigns     VitalSigns    `json:"vitalSigns" bson:"vitalSigns"`
	SeverityScore  int           `json:"severityScore" bson:"severityScore"`
	SeverityLevel  SeverityLevel `json:"severityLevel" bson:"severityLevel"`
}

type Patient struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	PatientID        string            `json:"patientId" bson:"patientId"`
	RegistrationType RegistrationType  `json:"registrationType" bson:"registrationType"`
	PersonalInfo     PersonalInfo      `json:"personalInfo" bson:"personalInfo"`
	ContactInfo      ContactInfo       `json:"contactInfo" bson:"contactInfo"`
	EmergencyContact EmergencyContact  `json:"emergencyContact" bson:"emergencyContact"`
	MedicalHistory   *MedicalHistory   `json:"medicalHistory,omitempty" bson:"medicalHistory,omitempty"`
	EmergencyDetails *EmergencyDetails `json:"emergencyDetails,omitempty" bson:"emergencyDetails,omitempty"`
	Status           PatientStatus     `json:"status" bson:"status"`
	RegisteredBy     Actor             `json:"registeredBy" bson:"registeredBy"`
	TimeModel        `bson:",inline"`
}

type PatientFilter struct {
	RegistrationType string
	Status           string
	Search           string
	Page             int
	PageSize         int
}
