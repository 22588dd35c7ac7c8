package models

import "time"

type LabTestType string

const (
	LabTestTypeBloodTest  LabTestType = "Blood Test"
	LabTestTypeMRI        LabTestType = "MRI"
	LabTestTypeXRay       LabTestType = "X-Ray"
	LabTestTypeCTScan     LabTestType = "CT-Scan"
	LabTestTypeECG        LabTestType = "ECG"
	LabTestTypeUltrasound LabTestType = "Ultrasound"
)

type LabTest struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	TestName       string      `json:"testName" bson:"testName"`
	TestType       LabTestType `json:"testType" bson:"testType"`
	Description    string      `json:"description,omitempty" bson:"description,omitempty"`
	Unit           string      `json:"unit,omitempty" bson:"unit,omitempty"`
	ReferenceRange string      `json:"referenceRange,omitempty" bson:"referenceRange,omitempty"`
	Price          float64     `json:"price" bson:"price"`
	IsActive       bool        `json:"isActive" bson:"isActive"`
	CreatedBy      Actor       `json:"createdBy" bson:"createdBy"`
	TimeModel      `bson:",inline"`
}

type LabTestFilter struct {
	TestType        string
	Search          string
	IncludeInactive bool
	Page            int
	PageSize        int
}

type TestPriority string

const (
	TestPriorityNormal    TestPriority = "normal"
	TestPriorityUrgent    TestPriority = "urgent"
	TestPriorityEmergency TestPriority = "emergency"
)

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "Registered"
	RegistrationStatusCollected  RegistrationStatus = "Collected"
	RegistrationStatusProcessing RegistrationStatus = "Processing"
	RegistrationStatusCompleted  RegistrationStatus = "Completed"
	RegistrationStatusDelivered  RegistrationStatus = "Delivered"
	RegistrationStatusCancelled  RegistrationStatus = "Cancelled"
)

var registrationTransitions = map[RegistrationStatus][]RegistrationStatus{
	RegistrationStatusRegistered: {RegistrationStatusCollected, RegistrationStatusCancelled},
	RegistrationStatusCollected:  {RegistrationStatusProcessing, RegistrationStatusCompleted, RegistrationStatusCancelled},
	RegistrationStatusProcessing: {RegistrationStatusCompleted, RegistrationStatusCancelled},
	RegistrationStatusCompleted:  {RegistrationStatusDelivered},
}

func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	for _, allowed := range registrationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RegistrationStatusesAllowedInto lists the statuses from which next is reachable.
func RegistrationStatusesAllowedInto(next RegistrationStatus) []RegistrationStatus {
	var from []RegistrationStatus
	for status, targets := range registrationTransitions {
		for _, target := range targets {
			if target == next {
				from = append(from, status)
			}
		}
	}
	return from
}

// AcceptsResult reports whether a result may be recorded against a registration in status s.
func (s RegistrationStatus) AcceptsResult() bool {
	return s == RegistrationStatusCollected || s == RegistrationStatusProcessing
}

type TestRegistration struct {
	ID               string               `json:"id" bson:"_id,omitempty"`
	PatientID        string               `json:"patientId" bson:"patientId"`
	LabTestID        string               `json:"labTestId" bson:"labTestId"`
	DoctorID         string               `json:"doctorId" bson:"doctorId"`
	Priority         TestPriority         `json:"priority" bson:"priority"`
	ScheduledDate    *time.Time           `json:"scheduledDate,omitempty" bson:"scheduledDate,omitempty"`
	RegistrationDate time.Time            `json:"registrationDate" bson:"registrationDate"`
	Status           RegistrationStatus   `json:"status" bson:"status"`
	Notes            string               `json:"notes,omitempty" bson:"notes,omitempty"`
	StatusHistory    []StatusHistoryEntry `json:"statusHistory" bson:"statusHistory"`
	TimeModel        `bson:",inline"`
}

type TestRegistrationFilter struct {
	PatientID string
	Status    string
	Priority  string
	Page      int
	PageSize  int
}

type TestResultStatus string

const (
	TestResultStatusDraft    TestResultStatus = "Draft"
	TestResultStatusVerified TestResultStatus = "Verified"
	TestResultStatusReleased TestResultStatus = "Released"
)

type TestResult struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	RegistrationID   string           `json:"registrationId" bson:"registrationId"`
	PatientID        string           `json:"patientId" bson:"patientId"`
	LabTestID        string           `json:"labTestId" bson:"labTestId"`
	Result           string           `json:"result" bson:"result"`
	Unit             string           `json:"unit,omitempty" bson:"unit,omitempty"`
	ReferenceRange   string           `json:"referenceRange,omitempty" bson:"referenceRange,omitempty"`
	Interpretation   string           `json:"interpretation,omitempty" bson:"interpretation,omitempty"`
	Notes            string           `json:"notes,omitempty" bson:"notes,omitempty"`
	Status           TestResultStatus `json:"status" bson:"status"`
	PerformedBy      Actor            `json:"performedBy" bson:"performedBy"`
	VerifiedBy       *Actor           `json:"verifiedBy,omitempty" bson:"verifiedBy,omitempty"`
	VerifiedAt       *time.Time       `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`
	ReleasedAt       *time.Time       `json:"releasedAt,omitempty" bson:"releasedAt,omitempty"`
	ReportObjectName string           `json:"reportObjectName,omitempty" bson:"reportObjectName,omitempty"`
	TimeModel        `bson:",inline"`
}
