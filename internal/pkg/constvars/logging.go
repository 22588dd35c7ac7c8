package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingRedisKey           = "redis_key"
	LoggingLockValueKey       = "lock_value"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingLockStoredValueKey = "lock_stored_value"
	LoggingQueueNameKey       = "queue_name"

	LoggingUserIDKey          = "user_id"
	LoggingUserRoleKey        = "user_role"
	LoggingPatientIDKey       = "patient_id"
	LoggingWardIDKey          = "ward_id"
	LoggingWardNumberKey      = "ward_number"
	LoggingBedNumberKey       = "bed_number"
	LoggingAdmissionIDKey     = "admission_id"
	LoggingAdmissionStatusKey = "admission_status"
	LoggingLabTestIDKey       = "lab_test_id"
	LoggingRegistrationIDKey  = "registration_id"
	LoggingTestResultIDKey    = "test_result_id"
	LoggingAuditActionKey     = "audit_action"
	LoggingAuditResourceKey   = "audit_resource"
	LoggingSeverityScoreKey   = "severity_score"
	LoggingSeverityLevelKey   = "severity_level"
	LoggingObjectNameKey      = "object_name"
)
