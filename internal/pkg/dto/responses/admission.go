package responses

import (
	"hospital-service/internal/app/models"
	"time"
)

type AdmitPatient struct {
	AdmissionID   string    `json:"admissionId"`
	WardNumber    string    `json:"wardNumber"`
	BedNumber     int       `json:"bedNumber"`
	AdmissionDate time.Time `json:"admissionDate"`
	Status        string    `json:"status"`
}

type TransferPatient struct {
	AdmissionID   string    `json:"admissionId"`
	NewWardNumber string    `json:"newWardNumber"`
	NewBedNumber  int       `json:"newBedNumber"`
	TransferDate  time.Time `json:"transferDate"`
	PreviousWard  string    `json:"previousWard"`
	Status        string    `json:"status"`
}

type DischargePatient struct {
	AdmissionID   string    `json:"admissionId"`
	DischargeDate time.Time `json:"dischargeDate"`
	WardNumber    string    `json:"wardNumber"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
}

type AdmissionPatientInfo struct {
	Name      string `json:"name"`
	PatientID string `json:"patientId"`
}

type AdmissionWardInfo struct {
	WardNumber string `json:"wardNumber"`
	WardType   string `json:"wardType"`
}

type AdmissionStatusHistory struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	ChangedBy string    `json:"changedBy"`
}

type AdmissionStatus struct {
	AdmissionID           string                        `json:"admissionId"`
	PatientInfo           AdmissionPatientInfo          `json:"patientInfo"`
	WardInfo              AdmissionWardInfo             `json:"wardInfo"`
	BedNumber             int                           `json:"bedNumber"`
	CurrentStatus         string                        `json:"currentStatus"`
	AdmissionDate         time.Time                     `json:"admissionDate"`
	ExpectedDischargeDate *time.Time                    `json:"expectedDischargeDate,omitempty"`
	ActualDischargeDate   *time.Time                    `json:"actualDischargeDate,omitempty"`
	AdmittingDoctor       string                        `json:"admittingDoctor"`
	StatusHistory         []AdmissionStatusHistory      `json:"statusHistory"`
	TransferHistory       []models.TransferHistoryEntry `json:"transferHistory"`
}
