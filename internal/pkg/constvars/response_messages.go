package constvars

const (
	ResponseUnknown = "unknown"

	RegisterUserSuccessMessage = "User registered successfully"
	LoginSuccessMessage        = "Login successful"
	LogoutSuccessMessage       = "Logged out successfully"
	GetProfileSuccessMessage   = "get profile successfully"

	RegisterOPDPatientSuccessMessage = "OPD patient registered successfully"
	RegisterAEPatientSuccessMessage  = "A&E patient registered successfully"
	GetPatientsSuccessMessage        = "get patients successfully"
	GetPatientSuccessMessage         = "get patient successfully"
	UpdatePatientSuccessMessage      = "Patient updated successfully"

	CreateWardSuccessMessage  = "Ward created successfully"
	GetWardsSuccessMessage    = "get wards successfully"
	GetWardSuccessMessage     = "get ward successfully"
	GetWardBedsSuccessMessage = "get ward beds successfully"
	UpdateWardSuccessMessage  = "Ward updated successfully"
	DeleteWardSuccessMessage  = "Ward deleted successfully"

	AdmitPatientSuccessMessage       = "Patient admitted successfully"
	TransferPatientSuccessMessage    = "Patient transferred successfully"
	DischargePatientSuccessMessage   = "Patient discharged successfully"
	GetAdmissionStatusSuccessMessage = "get admission status successfully"
	GetAdmissionsSuccessMessage      = "get admissions successfully"

	CreateLabTestSuccessMessage          = "Lab test created successfully"
	GetLabTestsSuccessMessage            = "get lab tests successfully"
	GetLabTestSuccessMessage             = "get lab test successfully"
	UpdateLabTestSuccessMessage          = "Lab test updated successfully"
	DeleteLabTestSuccessMessage          = "Lab test deleted successfully"
	RegisterTestSuccessMessage           = "Test registered successfully"
	GetTestRegistrationsSuccessMessage   = "get test registrations successfully"
	GetTestRegistrationSuccessMessage    = "get test registration successfully"
	UpdateTestRegistrationSuccessMessage = "Test registration status updated successfully"
	AddTestResultSuccessMessage          = "Test result added successfully"
	GetTestResultsSuccessMessage         = "get test results successfully"
	GetTestResultSuccessMessage          = "get test result successfully"
	VerifyTestResultSuccessMessage       = "Test result verified successfully"
	ReleaseTestResultSuccessMessage      = "Test result released successfully"
	UploadTestReportSuccessMessage       = "Test report uploaded successfully"
	GetTestReportSuccessMessage          = "get test report successfully"

	GetAuditLogsSuccessMessage = "get audit logs successfully"
	HealthCheckSuccessMessage  = "service is healthy"
	HealthCheckDegradedMessage = "service is degraded"
)
