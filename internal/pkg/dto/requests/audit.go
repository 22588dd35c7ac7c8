package requests

type AuditLogQuery struct {
	ResourceType string `validate:"omitempty,oneof=Patient Admission Ward User LabTest TestRegistration TestResult"`
	ResourceID   string `validate:"omitempty,max=100"`
	PatientID    string `validate:"omitempty,max=100"`
	Action       string `validate:"omitempty,oneof=CREATE UPDATE DELETE REGISTER ADMIT DISCHARGE TRANSFER TEST_REGISTER TEST_CREATE TEST_UPDATE TEST_RESULT LOGIN LOGOUT"`
	Pagination
}
