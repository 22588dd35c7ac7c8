package requests

type PersonalInfo struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string `json:"lastName" validate:"required,min=2,max=50"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,iso_date,not_future_date"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodGroup  string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

type Address struct {
	Street  string `json:"street" validate:"omitempty,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,pincode"`
}

type ContactInfo struct {
	Email   string  `json:"email" validate:"omitempty,email"`
	Phone   string  `json:"phone" validate:"required,phone_ten_digits"`
	Address Address `json:"address"`
}

type EmergencyContact struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	Relationship string `json:"relationship" validate:"required,max=50"`
	Phone        string `json:"phone" validate:"required,phone_ten_digits"`
}

type PastSurgery struct {
	SurgeryType string `json:"surgeryType" validate:"required,max=100"`
	Date        string `json:"date" validate:"omitempty,iso_date,not_future_date"`
	Hospital    string `json:"hospital" validate:"omitempty,max=100"`
}

type MedicalHistory struct {
	Allergies          []string      `json:"allergies" validate:"omitempty,dive,max=100"`
	ChronicConditions  []string      `json:"chronicConditions" validate:"omitempty,dive,max=100"`
	CurrentMedications []string      `json:"currentMedications" validate:"omitempty,dive,max=100"`
	PastSurgeries      []PastSurgery `json:"pastSurgeries" validate:"omitempty,dive"`
}

type VitalSigns struct {
	BloodPressure    string   `json:"bloodPressure" validate:"required,blood_pressure"`
	PulseRate        *int     `json:"pulseRate" validate:"required,gte=0,lte=300"`
	Temperature      *float64 `json:"temperature" validate:"required,gte=30,lte=45"`
	OxygenSaturation *int     `json:"oxygenSaturation" validate:"required,gte=0,lte=100"`
}

type EmergencyDetails struct {
	InjuryType     string     `json:"injuryType" validate:"required,max=100"`
	ArrivalMode    string     `json:"arrivalMode" validate:"required,oneof=Ambulance Walk-in Police Others"`
	ChiefComplaint string     `json:"chiefComplaint" validate:"required,min=5,max=500"`
	VitalSigns     VitalSigns `json:"vitalSigns"`
}

type RegisterOPDPatient struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	ContactInfo      ContactInfo      `json:"contactInfo"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	MedicalHistory   *MedicalHistory  `json:"medicalHistory" validate:"omitempty"`
}

type RegisterAEPatient struct {
	PersonalInfo     PersonalInfo      `json:"personalInfo"`
	ContactInfo      ContactInfo       `json:"contactInfo"`
	EmergencyContact EmergencyContact  `json:"emergencyContact"`
	EmergencyDetails *EmergencyDetails `json:"emergencyDetails" validate:"required"`
}

type UpdatePatient struct {
	ContactInfo      *ContactInfo      `json:"contactInfo" validate:"omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact" validate:"omitempty"`
	MedicalHistory   *MedicalHistory   `json:"medicalHistory" validate:"omitempty"`
	Status           *string           `json:"status" validate:"omitempty,oneof=active inactive deceased"`
}

type PatientQuery struct {
	RegistrationType string `validate:"omitempty,oneof=OPD A&E"`
	Status           string `validate:"omitempty,oneof=active inactive deceased"`
	Search           string `validate:"omitempty,max=100"`
	Pagination
}
