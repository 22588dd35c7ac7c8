package labs

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testPatientID = "patient-1"
	testBucket    = "lab-reports"
)

var (
	adminSession  = &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}
	labSession    = &models.Session{UserID: "tech-1", Role: constvars.RoleLabTechnician}
	doctorSession = &models.Session{UserID: "doctor-1", Role: constvars.RoleDoctor}
)

type labFixture struct {
	uc            *labUsecase
	labTests      *fakeLabTestRepository
	registrations *fakeRegistrationRepository
	results       *fakeResultRepository
	storage       *MockStorage
	audit         *recordingAuditLogger
}

func newLabFixture() *labFixture {
	f := &labFixture{
		labTests:      newFakeLabTestRepository(),
		registrations: newFakeRegistrationRepository(),
		results:       newFakeResultRepository(),
		storage:       new(MockStorage),
		audit:         &recordingAuditLogger{},
	}
	patients := &fakePatientRepository{patients: map[string]*models.Patient{
		testPatientID: {ID: testPatientID, PatientID: "PAT-2024-000001"},
	}}
	internalConfig := &config.InternalConfig{
		App:   config.App{LabReportMaxUploadSizeInMB: 1, LabReportURLExpiryInMinutes: 5},
		Minio: config.AppMinio{BucketName: testBucket},
	}
	f.uc = NewLabUsecase(f.labTests, f.registrations, f.results, patients, f.storage, f.audit,
		metrics.NewCollector(), internalConfig, zap.NewNop()).(*labUsecase)
	return f
}

func (f *labFixture) createLabTest(t *testing.T) *models.LabTest {
	t.Helper()
	price := 450.0
	labTest, err := f.uc.CreateLabTest(context.Background(), adminSession, &requests.CreateLabTest{
		TestName:       "Complete Blood Count",
		TestType:       "Blood Test",
		Unit:           "cells/mcL",
		ReferenceRange: "4500-11000",
		Price:          &price,
	})
	require.NoError(t, err)
	return labTest
}

func (f *labFixture) registerTest(t *testing.T, labTestID string) *models.TestRegistration {
	t.Helper()
	registration, err := f.uc.RegisterTest(context.Background(), doctorSession, &requests.RegisterTest{
		PatientID: testPatientID,
		LabTestID: labTestID,
	})
	require.NoError(t, err)
	return registration
}

func (f *labFixture) moveTo(t *testing.T, registrationID string, status models.RegistrationStatus) {
	t.Helper()
	_, err := f.uc.UpdateTestRegistrationStatus(context.Background(), labSession, registrationID, &requests.UpdateTestRegistrationStatus{
		Status: string(status),
	})
	require.NoError(t, err)
}

func errorOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode, customErr.ClientMessage
}

func TestLabUsecase_ResultLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newLabFixture()
	labTest := f.createLabTest(t)
	registration := f.registerTest(t, labTest.ID)

	assert.Equal(t, models.RegistrationStatusRegistered, registration.Status)
	assert.Equal(t, models.TestPriorityNormal, registration.Priority)
	assert.Equal(t, doctorSession.UserID, registration.DoctorID)

	f.moveTo(t, registration.ID, models.RegistrationStatusCollected)

	result, err := f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{
		RegistrationID: registration.ID,
		Result:         "7200",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TestResultStatusDraft, result.Status)
	assert.Equal(t, "cells/mcL", result.Unit)
	assert.Equal(t, "4500-11000", result.ReferenceRange)
	assert.Equal(t, models.RegistrationStatusCompleted, f.registrations.status(registration.ID))

	_, err = f.uc.ReleaseTestResult(ctx, doctorSession, result.ID)
	status, message := errorOf(t, err)
	assert.Equal(t, constvars.StatusBadRequest, status)
	assert.Equal(t, constvars.ErrClientInvalidStatusTransition, message)

	verified, err := f.uc.VerifyTestResult(ctx, doctorSession, result.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestResultStatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, doctorSession.UserID, verified.VerifiedBy.UserID)

	_, err = f.uc.VerifyTestResult(ctx, doctorSession, result.ID)
	require.Error(t, err)

	released, err := f.uc.ReleaseTestResult(ctx, doctorSession, result.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestResultStatusReleased, released.Status)
	assert.NotNil(t, released.ReleasedAt)
	assert.Equal(t, models.RegistrationStatusDelivered, f.registrations.status(registration.ID))

	assert.Equal(t, []models.AuditAction{
		models.AuditActionTestCreate,
		models.AuditActionTestRegister,
		models.AuditActionUpdate,
		models.AuditActionTestResult,
		models.AuditActionTestResult,
		models.AuditActionTestResult,
	}, f.audit.actions())
}

func TestLabUsecase_RegisterTest(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown patient is not found", func(t *testing.T) {
		f := newLabFixture()
		labTest := f.createLabTest(t)

		_, err := f.uc.RegisterTest(ctx, doctorSession, &requests.RegisterTest{PatientID: "missing", LabTestID: labTest.ID})

		status, message := errorOf(t, err)
		assert.Equal(t, constvars.StatusNotFound, status)
		assert.Equal(t, constvars.ErrClientPatientNotFound, message)
	})

	t.Run("inactive lab test is rejected", func(t *testing.T) {
		f := newLabFixture()
		labTest := f.createLabTest(t)
		require.NoError(t, f.uc.DeleteLabTest(ctx, adminSession, labTest.ID))

		_, err := f.uc.RegisterTest(ctx, doctorSession, &requests.RegisterTest{PatientID: testPatientID, LabTestID: labTest.ID})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientLabTestInactive, message)
	})

	t.Run("scheduled date in the past is invalid", func(t *testing.T) {
		f := newLabFixture()
		labTest := f.createLabTest(t)

		_, err := f.uc.RegisterTest(ctx, doctorSession, &requests.RegisterTest{
			PatientID:     testPatientID,
			LabTestID:     labTest.ID,
			ScheduledDate: time.Now().AddDate(0, 0, -2).Format("2006-01-02"),
		})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientScheduledDateInPast, message)
	})

	t.Run("today is a valid scheduled date", func(t *testing.T) {
		f := newLabFixture()
		labTest := f.createLabTest(t)

		registration, err := f.uc.RegisterTest(ctx, doctorSession, &requests.RegisterTest{
			PatientID:     testPatientID,
			LabTestID:     labTest.ID,
			Priority:      "urgent",
			ScheduledDate: time.Now().UTC().Format("2006-01-02"),
		})

		require.NoError(t, err)
		assert.Equal(t, models.TestPriorityUrgent, registration.Priority)
		assert.NotNil(t, registration.ScheduledDate)
	})
}

func TestLabUsecase_UpdateTestRegistrationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("skipping a step is rejected", func(t *testing.T) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)

		_, err := f.uc.UpdateTestRegistrationStatus(ctx, labSession, registration.ID, &requests.UpdateTestRegistrationStatus{
			Status: string(models.RegistrationStatusCompleted),
		})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientInvalidStatusTransition, message)
		assert.Equal(t, models.RegistrationStatusRegistered, f.registrations.status(registration.ID))
	})

	t.Run("history grows with each step", func(t *testing.T) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)

		f.moveTo(t, registration.ID, models.RegistrationStatusCollected)
		updated, err := f.uc.UpdateTestRegistrationStatus(ctx, labSession, registration.ID, &requests.UpdateTestRegistrationStatus{
			Status: string(models.RegistrationStatusCancelled),
			Notes:  "sample haemolysed",
		})

		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusCancelled, updated.Status)
		require.Len(t, updated.StatusHistory, 3)
		assert.Equal(t, "sample haemolysed", updated.StatusHistory[2].Notes)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)
		f.moveTo(t, registration.ID, models.RegistrationStatusCancelled)

		_, err := f.uc.UpdateTestRegistrationStatus(ctx, labSession, registration.ID, &requests.UpdateTestRegistrationStatus{
			Status: string(models.RegistrationStatusCollected),
		})

		require.Error(t, err)
		assert.Equal(t, models.RegistrationStatusCancelled, f.registrations.status(registration.ID))
	})
}

func TestLabUsecase_AddTestResult(t *testing.T) {
	ctx := context.Background()

	t.Run("sample not collected yet", func(t *testing.T) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)

		_, err := f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{RegistrationID: registration.ID, Result: "7.2"})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientInvalidStatusTransition, message)
	})

	t.Run("second result for the same registration", func(t *testing.T) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)
		f.moveTo(t, registration.ID, models.RegistrationStatusCollected)

		_, err := f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{RegistrationID: registration.ID, Result: "7.2"})
		require.NoError(t, err)

		_, err = f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{RegistrationID: registration.ID, Result: "7.3"})
		require.Error(t, err)
	})

	t.Run("unknown registration", func(t *testing.T) {
		f := newLabFixture()

		_, err := f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{RegistrationID: "missing", Result: "7.2"})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientTestRegistrationNotFound, message)
	})
}

func TestLabUsecase_TestReport(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*labFixture, *models.TestResult) {
		f := newLabFixture()
		registration := f.registerTest(t, f.createLabTest(t).ID)
		f.moveTo(t, registration.ID, models.RegistrationStatusCollected)
		result, err := f.uc.AddTestResult(ctx, labSession, &requests.AddTestResult{RegistrationID: registration.ID, Result: "7.2"})
		require.NoError(t, err)
		return f, result
	}

	t.Run("uploads and presigns", func(t *testing.T) {
		f, result := setup(t)
		isReportObject := mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "lab-results/"+result.ID+"/") && strings.HasSuffix(name, ".pdf")
		})
		f.storage.On("UploadFile", ctx, mock.Anything, int64(4), constvars.MIMEApplicationPDF, testBucket, isReportObject).Return(nil)
		f.storage.On("GetObjectUrlWithExpiryTime", ctx, testBucket, isReportObject, 5*time.Minute).Return("https://minio.local/report", nil)

		report, err := f.uc.UploadTestReport(ctx, labSession, result.ID, strings.NewReader("%PDF"), &requests.UploadTestReport{
			FileName:    "CBC.PDF",
			ContentType: constvars.MIMEApplicationPDF,
			Size:        4,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/report", report.URL)

		fetched, err := f.uc.GetTestReport(ctx, result.ID)
		require.NoError(t, err)
		assert.Equal(t, report.ObjectName, fetched.ObjectName)
		f.storage.AssertExpectations(t)
	})

	t.Run("rejects other file types", func(t *testing.T) {
		f, result := setup(t)

		_, err := f.uc.UploadTestReport(ctx, labSession, result.ID, strings.NewReader("x"), &requests.UploadTestReport{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Size:        1,
		})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientInvalidReportFile, message)
		f.storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		f, result := setup(t)

		_, err := f.uc.UploadTestReport(ctx, labSession, result.ID, strings.NewReader("x"), &requests.UploadTestReport{
			FileName:    "scan.png",
			ContentType: constvars.MIMEImagePNG,
			Size:        2 << 20,
		})

		_, message := errorOf(t, err)
		assert.Equal(t, constvars.ErrClientReportFileTooLarge, message)
	})

	t.Run("no report attached", func(t *testing.T) {
		f, result := setup(t)

		_, err := f.uc.GetTestReport(ctx, result.ID)

		status, _ := errorOf(t, err)
		assert.Equal(t, constvars.StatusNotFound, status)
	})
}

func TestLabUsecase_DeleteLabTest(t *testing.T) {
	ctx := context.Background()
	f := newLabFixture()
	labTest := f.createLabTest(t)

	require.NoError(t, f.uc.DeleteLabTest(ctx, adminSession, labTest.ID))
	require.NoError(t, f.uc.DeleteLabTest(ctx, adminSession, labTest.ID))

	active, total, err := f.uc.ListLabTests(ctx, &requests.LabTestQuery{})
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Equal(t, 0, total)

	all, _, err := f.uc.ListLabTests(ctx, &requests.LabTestQuery{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	assert.Equal(t, []models.AuditAction{models.AuditActionTestCreate, models.AuditActionDelete}, f.audit.actions())

	err = f.uc.DeleteLabTest(ctx, adminSession, "missing")
	_, message := errorOf(t, err)
	assert.Equal(t, constvars.ErrClientLabTestNotFound, message)
}
