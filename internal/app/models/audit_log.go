package models

import "time"

type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionRegister     AuditAction = "REGISTER"
	AuditActionAdmit        AuditAction = "ADMIT"
	AuditActionDischarge    AuditAction = "DISCHARGE"
	AuditActionTransfer     AuditAction = "TRANSFER"
	AuditActionTestRegister AuditAction = "TEST_REGISTER"
	AuditActionTestCreate   AuditAction = "TEST_CREATE"
	AuditActionTestUpdate   AuditAction = "TEST_UPDATE"
	AuditActionTestResult   AuditAction = "TEST_RESULT"
	AuditActionLogin        AuditAction = "LOGIN"
	AuditActionLogout       AuditAction = "LOGOUT"
)

type AuditResourceType string

const (
	AuditResourcePatient          AuditResourceType = "Patient"
	AuditResourceAdmission        AuditResourceType = "Admission"
	AuditResourceWard             AuditResourceType = "Ward"
	AuditResourceUser             AuditResourceType = "User"
	AuditResourceLabTest          AuditResourceType = "LabTest"
	AuditResourceTestRegistration AuditResourceType = "TestRegistration"
	AuditResourceTestResult       AuditResourceType = "TestResult"
)

// RequiresPatient reports whether entries about this resource must name a patient.
func (r AuditResourceType) RequiresPatient() bool {
	switch r {
	case AuditResourcePatient, AuditResourceAdmission, AuditResourceTestRegistration, AuditResourceTestResult:
		return true
	}
	return false
}

type AuditLog struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	Action       AuditAction       `json:"action" bson:"action"`
	ResourceType AuditResourceType `json:"resourceType" bson:"resourceType"`
	ResourceID   string            `json:"resourceId" bson:"resourceId"`
	PatientID    string            `json:"patientId,omitempty" bson:"patientId,omitempty"`
	Changes      map[string]any    `json:"changes,omitempty" bson:"changes,omitempty"`
	PerformedBy  Actor             `json:"performedBy" bson:"performedBy"`
	RequestID    string            `json:"requestId,omitempty" bson:"requestId,omitempty"`
	Timestamp    time.Time         `json:"timestamp" bson:"timestamp"`
}

type AuditLogFilter struct {
	ResourceType string
	ResourceID   string
	PatientID    string
	Action       string
	Page         int
	PageSize     int
}
