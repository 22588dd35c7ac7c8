package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HOSP_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 10
	AppMaxPageSize         = 100
)

const (
	PatientIDPrefix       = "PAT"
	PatientIDFormat       = "%s-%d-%06d"
	PatientCounterKeyYear = "patient_%d"
)

const (
	WardLockKeyFormat   = "ward:%s:lock"
	SessionKeyFormat    = "session:%s"
	LabReportObjectPath = "lab-results/%s/%s%s"
)

// Staff roles carried in the session and checked by RequireRoles.
const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleLabTechnician = "lab_technician"
	RoleParamedic     = "paramedic"
	RoleClerk         = "clerk"
)

var AllRoles = []string{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleLabTechnician,
	RoleParamedic,
	RoleClerk,
}

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)
