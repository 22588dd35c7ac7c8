package constvars

// Validation messages, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"gt":               "must be greater than %s",
	"oneof":            "must be one of [%s]",
	"len":              "must be exactly %s characters long",
	"password":         "must be at least 8 characters long and contain one uppercase letter, one lowercase letter and one number",
	"ward_number":      "must match the pattern LETTER-### (for example A-101)",
	"phone_ten_digits": "must be a valid 10-digit phone number",
	"pincode":          "must be a valid 6-digit pincode",
	"blood_pressure":   "must be in the format systolic/diastolic (for example 120/80)",
	"iso_date":         "must be a valid date (YYYY-MM-DD or RFC3339)",
	"not_future_date":  "must not be in the future",
	"not_past_date":    "must not be in the past",
	"staff_role":       "must be a valid staff role",
	"username":         "must be 3-30 characters of letters, numbers, underscores or dots",
	"mongodb":          "must be a valid identifier",
}

// Tags whose message carries the validator param.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"gt":    true,
	"oneof": true,
	"len":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientAccountDisabled               = "your account is disabled"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientEmailAlreadyExists            = "User with this email already exists"
	ErrClientUsernameAlreadyExists         = "User with this username already exists"
	ErrClientInvalidID                     = "the given id is not valid"

	ErrClientPatientNotFound           = "Patient not found"
	ErrClientPatientPhoneExists        = "Patient with this phone already exists"
	ErrClientWardNotFound              = "Ward not found"
	ErrClientWardNumberExists          = "Ward with this number already exists"
	ErrClientWardHasPatients           = "Cannot delete ward with admitted patients"
	ErrClientWardCapacityBelowOccupied = "Total beds cannot be less than currently occupied beds"
	ErrClientWardNotActive             = "Ward is not accepting admissions"
	ErrClientNoBedsAvailable           = "No beds available in this ward"
	ErrClientBedOccupied               = "Selected bed is already occupied"
	ErrClientBedOutOfRange             = "Bed number exceeds the ward's total beds"
	ErrClientPatientAlreadyAdmitted    = "Patient already has an active admission"
	ErrClientAdmissionNotFound         = "Admission not found"
	ErrClientActiveAdmissionNotFound   = "Active admission not found"
	ErrClientAdmissionChanged          = "Admission was changed by another request, please reload and retry"
	ErrClientTransferSameBed           = "Patient is already in the selected ward and bed"
	ErrClientInvalidStatusTransition   = "Status change is not allowed from the current status"
	ErrClientLabTestNotFound           = "Lab test not found"
	ErrClientLabTestInactive           = "Lab test is not available"
	ErrClientTestRegistrationNotFound  = "Test registration not found"
	ErrClientTestResultNotFound        = "Test result not found"
	ErrClientTestReportNotFound        = "Test result has no report attached"
	ErrClientInvalidReportFile         = "report must be a PDF, PNG or JPEG file"
	ErrClientTotalBedsMustBePositive   = "Total beds must be at least 1"
	ErrClientFloorMustNotBeNegative    = "Floor must not be negative"
	ErrClientScheduledDateInPast       = "Scheduled date must not be in the past"
	ErrClientDischargeBeforeAdmission  = "Discharge date cannot be before the admission date"
	ErrClientEmergencyDetailsRequired  = "Emergency details are required for A&E registration"
	ErrClientInvalidDateOfBirth        = "Date of birth must be a valid date that is not in the future"
	ErrClientInvalidSurgeryDate        = "Surgery date must be a valid date"
	ErrClientTestResultAlreadyExists   = "A result has already been recorded for this registration"
	ErrClientReportFileTooLarge        = "report file is too large"
	ErrClientRequestTooLarge           = "request body is too large"
	ErrClientTooManyRequests           = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamIDValidation     = "url param %s is not a valid id"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevAccountDisabled          = "account is disabled"
	ErrDevLoginRateLimited         = "login rate limit exceeded"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUsernameAlreadyExists    = "username already exists"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevRoleTypeDoesntMatch       = "role type doesn't match"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBImmutableDocument        = "documents in collection %s are immutable"

	ErrDevRedisGetNoData  = "no data found in redis for key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQConsumeMessage = "failed to consume message from queue %s"

	ErrDevMinioFailedToCreateObject  = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object on bucket %s"

	ErrDevExcelBuildWorkbook = "failed to build excel workbook"

	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process request"
	ErrDevServerPanic            = "recovered from panic"
	ErrDevRequestTooLarge        = "request body exceeds %d bytes"
	ErrDevRateLimited            = "request rate limit exceeded"

	ErrDevPatientNotFound           = "patient not found"
	ErrDevPatientPhoneExists        = "patient phone already registered"
	ErrDevTestResultAlreadyExists   = "test result already recorded for registration"
	ErrDevReportFileTooLarge        = "report file exceeds the configured upload limit"
	ErrDevWardNotFound              = "ward not found"
	ErrDevWardNumberExists          = "ward number already exists"
	ErrDevWardHasPatients           = "ward still has occupied beds"
	ErrDevWardCapacityBelowOccupied = "total beds below occupied beds"
	ErrDevWardNotActive             = "ward status is not Active"
	ErrDevNoBedsAvailable           = "ward occupancy reached total beds"
	ErrDevOccupancyOutOfRange       = "occupancy change would leave the allowed range"
	ErrDevBedOccupied               = "bed held by another active admission"
	ErrDevBedOutOfRange             = "bed number greater than total beds"
	ErrDevPatientAlreadyAdmitted    = "patient has an active admission"
	ErrDevAdmissionNotFound         = "admission not found"
	ErrDevActiveAdmissionNotFound   = "active admission not found"
	ErrDevAdmissionChanged          = "admission placement changed since it was read"
	ErrDevTransferSameBed           = "transfer target equals current ward and bed"
	ErrDevInvalidStatusTransition   = "invalid status transition from %s to %s"
	ErrDevLabTestNotFound           = "lab test not found"
	ErrDevLabTestInactive           = "lab test is inactive"
	ErrDevTestRegistrationNotFound  = "test registration not found"
	ErrDevTestResultNotFound        = "test result not found"
	ErrDevTestReportNotFound        = "test result report object missing"
	ErrDevInvalidReportFile         = "report file type not allowed"
)
