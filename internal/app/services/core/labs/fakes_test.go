package labs

import (
	"context"
	"fmt"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/exceptions"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type fakeLabTestRepository struct {
	mu    sync.Mutex
	tests map[string]*models.LabTest
	seq   int
}

func newFakeLabTestRepository() *fakeLabTestRepository {
	return &fakeLabTestRepository{tests: make(map[string]*models.LabTest)}
}

func (f *fakeLabTestRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeLabTestRepository) CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("lab-test-%d", f.seq)
	stored := *labTest
	stored.ID = id
	f.tests[id] = &stored
	return id, nil
}

func (f *fakeLabTestRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	labTest, ok := f.tests[labTestID]
	if !ok {
		return nil, nil
	}
	clone := *labTest
	return &clone, nil
}

func (f *fakeLabTestRepository) FindAll(ctx context.Context, filter models.LabTestFilter) ([]models.LabTest, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.LabTest, 0)
	for _, labTest := range f.tests {
		if !filter.IncludeInactive && !labTest.IsActive {
			continue
		}
		result = append(result, *labTest)
	}
	return result, len(result), nil
}

func (f *fakeLabTestRepository) UpdateLabTest(ctx context.Context, labTest *models.LabTest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *labTest
	f.tests[labTest.ID] = &stored
	return nil
}

func (f *fakeLabTestRepository) Deactivate(ctx context.Context, labTestID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	labTest, ok := f.tests[labTestID]
	if !ok || !labTest.IsActive {
		return false, nil
	}
	labTest.IsActive = false
	return true, nil
}

type fakeRegistrationRepository struct {
	mu            sync.Mutex
	registrations map[string]*models.TestRegistration
	seq           int
}

func newFakeRegistrationRepository() *fakeRegistrationRepository {
	return &fakeRegistrationRepository{registrations: make(map[string]*models.TestRegistration)}
}

func (f *fakeRegistrationRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeRegistrationRepository) CreateRegistration(ctx context.Context, registration *models.TestRegistration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("registration-%d", f.seq)
	stored := *registration
	stored.ID = id
	stored.StatusHistory = append([]models.StatusHistoryEntry(nil), registration.StatusHistory...)
	f.registrations[id] = &stored
	return id, nil
}

func (f *fakeRegistrationRepository) FindByID(ctx context.Context, registrationID string) (*models.TestRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	registration, ok := f.registrations[registrationID]
	if !ok {
		return nil, nil
	}
	clone := *registration
	clone.StatusHistory = append([]models.StatusHistoryEntry(nil), registration.StatusHistory...)
	return &clone, nil
}

func (f *fakeRegistrationRepository) FindAll(ctx context.Context, filter models.TestRegistrationFilter) ([]models.TestRegistration, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.TestRegistration, 0)
	for _, registration := range f.registrations {
		if filter.PatientID != "" && registration.PatientID != filter.PatientID {
			continue
		}
		result = append(result, *registration)
	}
	return result, len(result), nil
}

func (f *fakeRegistrationRepository) UpdateStatus(ctx context.Context, registrationID string, from []models.RegistrationStatus, entry models.StatusHistoryEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	registration, ok := f.registrations[registrationID]
	if !ok {
		return false, nil
	}
	allowed := false
	for _, status := range from {
		if registration.Status == status {
			allowed = true
		}
	}
	if !allowed {
		return false, nil
	}
	registration.Status = models.RegistrationStatus(entry.Status)
	registration.StatusHistory = append(registration.StatusHistory, entry)
	return true, nil
}

func (f *fakeRegistrationRepository) status(registrationID string) models.RegistrationStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrations[registrationID].Status
}

type fakeResultRepository struct {
	mu      sync.Mutex
	results map[string]*models.TestResult
	seq     int
}

func newFakeResultRepository() *fakeResultRepository {
	return &fakeResultRepository{results: make(map[string]*models.TestResult)}
}

func (f *fakeResultRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeResultRepository) CreateResult(ctx context.Context, result *models.TestResult) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.results {
		if existing.RegistrationID == result.RegistrationID {
			return "", exceptions.ErrTestResultAlreadyExist(nil)
		}
	}
	f.seq++
	id := fmt.Sprintf("result-%d", f.seq)
	stored := *result
	stored.ID = id
	f.results[id] = &stored
	return id, nil
}

func (f *fakeResultRepository) FindByID(ctx context.Context, resultID string) (*models.TestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.results[resultID]
	if !ok {
		return nil, nil
	}
	clone := *result
	return &clone, nil
}

func (f *fakeResultRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.TestResult, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	results := make([]models.TestResult, 0)
	for _, result := range f.results {
		if result.PatientID == patientID {
			results = append(results, *result)
		}
	}
	return results, len(results), nil
}

func (f *fakeResultRepository) MarkVerified(ctx context.Context, resultID string, verifiedBy models.Actor, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.results[resultID]
	if !ok || result.Status != models.TestResultStatusDraft {
		return false, nil
	}
	result.Status = models.TestResultStatusVerified
	result.VerifiedBy = &verifiedBy
	result.VerifiedAt = &at
	return true, nil
}

func (f *fakeResultRepository) MarkReleased(ctx context.Context, resultID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.results[resultID]
	if !ok || result.Status != models.TestResultStatusVerified {
		return false, nil
	}
	result.Status = models.TestResultStatusReleased
	result.ReleasedAt = &at
	return true, nil
}

func (f *fakeResultRepository) SetReportObjectName(ctx context.Context, resultID, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if result, ok := f.results[resultID]; ok {
		result.ReportObjectName = objectName
	}
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	f.patients[patient.ID] = patient
	return patient.ID, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepository) FindByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return nil
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) error {
	return m.Called(ctx, file, size, contentType, bucketName, objectName).Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type recordingAuditLogger struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (r *recordingAuditLogger) Record(ctx context.Context, entry models.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAuditLogger) actions() []models.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]models.AuditAction, 0, len(r.entries))
	for _, entry := range r.entries {
		actions = append(actions, entry.Action)
	}
	return actions
}
