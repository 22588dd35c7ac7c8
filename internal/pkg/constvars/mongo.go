package constvars

const (
	MongoCollectionUsers             = "users"
	MongoCollectionPatients          = "patients"
	MongoCollectionWards             = "wards"
	MongoCollectionAdmissions        = "admissions"
	MongoCollectionLabTests          = "lab_tests"
	MongoCollectionTestRegistrations = "test_registrations"
	MongoCollectionTestResults       = "test_results"
	MongoCollectionAuditLogs         = "audit_logs"
	MongoCollectionCounters          = "counters"
)
