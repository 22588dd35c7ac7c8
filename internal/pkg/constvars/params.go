package constvars

const (
	URLParamID          = "id"
	URLParamAdmissionID = "admissionId"
	URLParamPatientID   = "patientId"
)

const (
	URLQueryParamPage             = "page"
	URLQueryParamPageSize         = "page_size"
	URLQueryParamSearch           = "search"
	URLQueryParamStatus           = "status"
	URLQueryParamRegistrationType = "registration_type"
	URLQueryParamWardType         = "ward_type"
	URLQueryParamSpecialization   = "specialization"
	URLQueryParamAvailable        = "available"
	URLQueryParamPatientID        = "patient_id"
	URLQueryParamWardID           = "ward_id"
	URLQueryParamPriority         = "priority"
	URLQueryParamTestType         = "test_type"
	URLQueryParamResourceType     = "resource_type"
	URLQueryParamResourceID       = "resource_id"
	URLQueryParamAction           = "action"
	URLQueryParamIncludeInactive  = "include_inactive"
)

const (
	FormFieldReportFile = "report"
)
