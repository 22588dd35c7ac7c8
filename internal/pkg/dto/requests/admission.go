package requests

type AdmitPatient struct {
	PatientID             string `json:"patientId" validate:"required,mongodb"`
	WardID                string `json:"wardId" validate:"required,mongodb"`
	BedNumber             int    `json:"bedNumber" validate:"gte=1"`
	AdmissionType         string `json:"admissionType" validate:"required,oneof=Emergency Planned Transfer"`
	Diagnosis             string `json:"diagnosis" validate:"required,max=500"`
	ExpectedDischargeDate string `json:"expectedDischargeDate" validate:"omitempty,iso_date,not_past_date"`
	Notes                 string `json:"notes" validate:"omitempty,max=1000"`
}

type TransferPatient struct {
	AdmissionID  string `json:"admissionId" validate:"required,mongodb"`
	NewWardID    string `json:"newWardId" validate:"required,mongodb"`
	NewBedNumber int    `json:"newBedNumber" validate:"gte=1"`
	Reason       string `json:"reason" validate:"omitempty,max=500"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

type DischargePatient struct {
	AdmissionID      string `json:"admissionId" validate:"required,mongodb"`
	DischargeNotes   string `json:"dischargeNotes" validate:"omitempty,max=1000"`
	DischargeSummary string `json:"dischargeSummary" validate:"omitempty,max=2000"`
}

type AdmissionQuery struct {
	PatientID string `validate:"omitempty,mongodb"`
	WardID    string `validate:"omitempty,mongodb"`
	Status    string `validate:"omitempty,oneof=Admitted Transferred Discharged"`
	Pagination
}
