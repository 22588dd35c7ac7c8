package models

import "time"

type AdmissionStatus string

const (
	AdmissionStatusAdmitted    AdmissionStatus = "Admitted"
	AdmissionStatusTransferred AdmissionStatus = "Transferred"
	AdmissionStatusDischarged  AdmissionStatus = "Discharged"
)

var admissionTransitions = map[AdmissionStatus][]AdmissionStatus{
	AdmissionStatusAdmitted:    {AdmissionStatusTransferred, AdmissionStatusDischarged},
	AdmissionStatusTransferred: {AdmissionStatusTransferred, AdmissionStatusDischarged},
}

// CanTransitionTo reports whether an admission in status s may move to next.
// Discharged is terminal.
func (s AdmissionStatus) CanTransitionTo(next AdmissionStatus) bool {
	for _, allowed := range admissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AdmissionStatus) IsActive() bool {
	return s == AdmissionStatusAdmitted || s == AdmissionStatusTransferred
}

// AdmissionStatusesAllowedInto lists the statuses from which next is reachable.
// Store updates use it as a filter so a concurrent transition loses cleanly.
func AdmissionStatusesAllowedInto(next AdmissionStatus) []AdmissionStatus {
	var from []AdmissionStatus
	for status, targets := range admissionTransitions {
		for _, target := range targets {
			if target == next {
				from = append(from, status)
			}
		}
	}
	return from
}

type AdmissionType string

const (
	AdmissionTypeEmergency AdmissionType = "Emergency"
	AdmissionTypePlanned   AdmissionType = "Planned"
	AdmissionTypeTransfer  AdmissionType = "Transfer"
)

type Actor struct {
	UserID   string `json:"userId" bson:"userId"`
	UserRole string `json:"userRole" bson:"userRole"`
}

type StatusHistoryEntry struct {
	Status    string    `json:"status" bson:"status"`
	ChangedAt time.Time `json:"changedAt" bson:"changedAt"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	ChangedBy Actor     `json:"changedBy" bson:"changedBy"`
}

type TransferHistoryEntry struct {
	FromWard     string    `json:"fromWard" bson:"fromWard"`
	ToWard       string    `json:"toWard" bson:"toWard"`
	FromBed      int       `json:"fromBed" bson:"fromBed"`
	ToBed        int       `json:"toBed" bson:"toBed"`
	TransferDate time.Time `json:"transferDate" bson:"transferDate"`
	Reason       string    `json:"reason" bson:"reason"`
	Notes        string    `json:"notes" bson:"notes"`
}

type Admission struct {
	ID                    string                 `json:"id" bson:"_id,omitempty"`
	PatientID             string                 `json:"patientId" bson:"patientId"`
	WardID                string                 `json:"wardId" bson:"wardId"`
	BedNumber             int                    `json:"bedNumber" bson:"bedNumber"`
	AdmissionDate         time.Time              `json:"admissionDate" bson:"admissionDate"`
	ExpectedDischargeDate *time.Time             `json:"expectedDischargeDate,omitempty" bson:"expectedDischargeDate,omitempty"`
	ActualDischargeDate   *time.Time             `json:"actualDischargeDate,omitempty" bson:"actualDischargeDate,omitempty"`
	AdmittingDoctor       string                 `json:"admittingDoctor" bson:"admittingDoctor"`
	AdmissionType         AdmissionType          `json:"admissionType" bson:"admissionType"`
	Diagnosis             string                 `json:"diagnosis" bson:"diagnosis"`
	Notes                 string                 `json:"notes,omitempty" bson:"notes,omitempty"`
	DischargeNotes        string                 `json:"dischargeNotes,omitempty" bson:"dischargeNotes,omitempty"`
	DischargeSummary      string                 `json:"dischargeSummary,omitempty" bson:"dischargeSummary,omitempty"`
	Status                AdmissionStatus        `json:"status" bson:"status"`
	Active                bool                   `json:"-" bson:"active"`
	StatusHistory         []StatusHistoryEntry   `json:"statusHistory" bson:"statusHistory"`
	TransferHistory       []TransferHistoryEntry `json:"transferHistory" bson:"transferHistory"`
	TimeModel             `bson:",inline"`
}

// TransferUpdate moves an active admission to another bed in one conditional
// write. It only matches while the admission still sits in FromWardID/FromBedNumber.
type TransferUpdate struct {
	AdmissionID   string
	FromWardID    string
	FromBedNumber int
	NewWardID     string
	NewBedNumber  int
	History       StatusHistoryEntry
	Transfer      TransferHistoryEntry
}

// DischargeUpdate closes an active admission in one conditional write. It
// only matches while the admission still sits in WardID/BedNumber.
type DischargeUpdate struct {
	AdmissionID      string
	WardID           string
	BedNumber        int
	DischargeDate    time.Time
	DischargeNotes   string
	DischargeSummary string
	History          StatusHistoryEntry
}

type AdmissionFilter struct {
	PatientID string
	WardID    string
	Status    string
	Page      int
	PageSize  int
}
