package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"io"
	"time"
)

type LabTestRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error)
	FindByID(ctx context.Context, labTestID string) (*models.LabTest, error)
	FindAll(ctx context.Context, filter models.LabTestFilter) ([]models.LabTest, int, error)
	UpdateLabTest(ctx context.Context, labTest *models.LabTest) error
	Deactivate(ctx context.Context, labTestID string) (bool, error)
}

type TestRegistrationRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateRegistration(ctx context.Context, registration *models.TestRegistration) (string, error)
	FindByID(ctx context.Context, registrationID string) (*models.TestRegistration, error)
	FindAll(ctx context.Context, filter models.TestRegistrationFilter) ([]models.TestRegistration, int, error)
	// UpdateStatus only matches while the registration is in one of from.
	UpdateStatus(ctx context.Context, registrationID string, from []models.RegistrationStatus, entry models.StatusHistoryEntry) (bool, error)
}

type TestResultRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateResult(ctx context.Context, result *models.TestResult) (string, error)
	FindByID(ctx context.Context, resultID string) (*models.TestResult, error)
	FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.TestResult, int, error)
	MarkVerified(ctx context.Context, resultID string, verifiedBy models.Actor, at time.Time) (bool, error)
	MarkReleased(ctx context.Context, resultID string, at time.Time) (bool, error)
	SetReportObjectName(ctx context.Context, resultID, objectName string) error
}

type LabUsecase interface {
	CreateLabTest(ctx context.Context, session *models.Session, request *requests.CreateLabTest) (*models.LabTest, error)
	ListLabTests(ctx context.Context, query *requests.LabTestQuery) ([]models.LabTest, int, error)
	GetLabTest(ctx context.Context, labTestID string) (*models.LabTest, error)
	UpdateLabTest(ctx context.Context, session *models.Session, labTestID string, request *requests.UpdateLabTest) (*models.LabTest, error)
	DeleteLabTest(ctx context.Context, session *models.Session, labTestID string) error

	RegisterTest(ctx context.Context, session *models.Session, request *requests.RegisterTest) (*models.TestRegistration, error)
	ListTestRegistrations(ctx context.Context, query *requests.TestRegistrationQuery) ([]models.TestRegistration, int, error)
	GetTestRegistration(ctx context.Context, registrationID string) (*models.TestRegistration, error)
	UpdateTestRegistrationStatus(ctx context.Context, session *models.Session, registrationID string, request *requests.UpdateTestRegistrationStatus) (*models.TestRegistration, error)

	AddTestResult(ctx context.Context, session *models.Session, request *requests.AddTestResult) (*models.TestResult, error)
	GetTestResult(ctx context.Context, resultID string) (*models.TestResult, error)
	ListPatientTestResults(ctx context.Context, patientID string, pagination *requests.Pagination) ([]models.TestResult, int, error)
	VerifyTestResult(ctx context.Context, session *models.Session, resultID string) (*models.TestResult, error)
	ReleaseTestResult(ctx context.Context, session *models.Session, resultID string) (*models.TestResult, error)
	UploadTestReport(ctx context.Context, session *models.Session, resultID string, file io.Reader, meta *requests.UploadTestReport) (*responses.TestReport, error)
	GetTestReport(ctx context.Context, resultID string) (*responses.TestReport, error)
}
