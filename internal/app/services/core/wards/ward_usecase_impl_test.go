package wards

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWardRepository struct {
	mock.Mock
}

func (m *MockWardRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWardRepository) CreateWard(ctx context.Context, ward *models.Ward) (string, error) {
	args := m.Called(ctx, ward)
	return args.String(0), args.Error(1)
}

func (m *MockWardRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	args := m.Called(ctx, wardID)
	ward, _ := args.Get(0).(*models.Ward)
	return ward, args.Error(1)
}

func (m *MockWardRepository) FindByWardNumber(ctx context.Context, wardNumber string) (*models.Ward, error) {
	args := m.Called(ctx, wardNumber)
	ward, _ := args.Get(0).(*models.Ward)
	return ward, args.Error(1)
}

func (m *MockWardRepository) FindAll(ctx context.Context, filter models.WardFilter) ([]models.Ward, int, error) {
	args := m.Called(ctx, filter)
	wards, _ := args.Get(0).([]models.Ward)
	return wards, args.Int(1), args.Error(2)
}

func (m *MockWardRepository) UpdateWard(ctx context.Context, ward *models.Ward) (bool, error) {
	args := m.Called(ctx, ward)
	return args.Bool(0), args.Error(1)
}

func (m *MockWardRepository) UpdateCapacity(ctx context.Context, wardID string, totalBeds int) (bool, error) {
	args := m.Called(ctx, wardID, totalBeds)
	return args.Bool(0), args.Error(1)
}

func (m *MockWardRepository) IncrementOccupancy(ctx context.Context, wardID string, delta int) (bool, error) {
	args := m.Called(ctx, wardID, delta)
	return args.Bool(0), args.Error(1)
}

func (m *MockWardRepository) DeleteEmptyWard(ctx context.Context, wardID string) (bool, error) {
	args := m.Called(ctx, wardID)
	return args.Bool(0), args.Error(1)
}

type MockAdmissionRepository struct {
	mock.Mock
}

func (m *MockAdmissionRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAdmissionRepository) CreateAdmission(ctx context.Context, admission *models.Admission) (string, error) {
	args := m.Called(ctx, admission)
	return args.String(0), args.Error(1)
}

func (m *MockAdmissionRepository) FindByID(ctx context.Context, admissionID string) (*models.Admission, error) {
	args := m.Called(ctx, admissionID)
	admission, _ := args.Get(0).(*models.Admission)
	return admission, args.Error(1)
}

func (m *MockAdmissionRepository) FindActiveByPatientID(ctx context.Context, patientID string) (*models.Admission, error) {
	args := m.Called(ctx, patientID)
	admission, _ := args.Get(0).(*models.Admission)
	return admission, args.Error(1)
}

func (m *MockAdmissionRepository) FindActiveByBed(ctx context.Context, wardID string, bedNumber int) (*models.Admission, error) {
	args := m.Called(ctx, wardID, bedNumber)
	admission, _ := args.Get(0).(*models.Admission)
	return admission, args.Error(1)
}

func (m *MockAdmissionRepository) FindActiveByWardID(ctx context.Context, wardID string) ([]models.Admission, error) {
	args := m.Called(ctx, wardID)
	admissions, _ := args.Get(0).([]models.Admission)
	return admissions, args.Error(1)
}

func (m *MockAdmissionRepository) FindAll(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error) {
	args := m.Called(ctx, filter)
	admissions, _ := args.Get(0).([]models.Admission)
	return admissions, args.Int(1), args.Error(2)
}

func (m *MockAdmissionRepository) Transfer(ctx context.Context, update models.TransferUpdate) (bool, error) {
	args := m.Called(ctx, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdmissionRepository) Discharge(ctx context.Context, update models.DischargeUpdate) (bool, error) {
	args := m.Called(ctx, update)
	return args.Bool(0), args.Error(1)
}

type nopAuditLogger struct{}

func (nopAuditLogger) Record(ctx context.Context, entry models.AuditLog) {}

const testWardID = "64b7f0c2a1b2c3d4e5f60718"

var adminSession = &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}

func intPtr(v int) *int {
	return &v
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestWardUsecase_CreateWard(t *testing.T) {
	ctx := context.Background()

	t.Run("starts empty", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("FindByWardNumber", ctx, "A-101").Return(nil, nil)
		wards.On("CreateWard", ctx, mock.MatchedBy(func(w *models.Ward) bool {
			return w.OccupiedBeds == 0 && w.TotalBeds == 20 && w.Status == models.WardStatusActive &&
				w.Specialization == models.WardSpecializationGeneral
		})).Return(testWardID, nil)

		ward, err := uc.CreateWard(ctx, adminSession, &requests.CreateWard{
			WardNumber: "A-101",
			WardType:   "General",
			Floor:      intPtr(1),
			TotalBeds:  20,
		})

		require.NoError(t, err)
		assert.Equal(t, testWardID, ward.ID)
		assert.Equal(t, 20, ward.AvailableBeds)
		wards.AssertExpectations(t)
	})

	t.Run("zero beds is invalid input", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		_, err := uc.CreateWard(ctx, adminSession, &requests.CreateWard{
			WardNumber: "A-102",
			WardType:   "General",
			Floor:      intPtr(1),
			TotalBeds:  0,
		})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		wards.AssertNotCalled(t, "CreateWard", mock.Anything, mock.Anything)
	})

	t.Run("duplicate ward number is a conflict", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("FindByWardNumber", ctx, "A-101").Return(&models.Ward{ID: testWardID, WardNumber: "A-101"}, nil)

		_, err := uc.CreateWard(ctx, adminSession, &requests.CreateWard{
			WardNumber: "A-101",
			WardType:   "ICU",
			Floor:      intPtr(0),
			TotalBeds:  4,
		})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientWardNumberExists, customErr.ClientMessage)
	})
}

func TestWardUsecase_UpdateCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("below occupied beds is rejected", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("UpdateCapacity", ctx, testWardID, 2).Return(false, nil)
		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, TotalBeds: 10, OccupiedBeds: 5}, nil)

		err := uc.UpdateCapacity(ctx, testWardID, 2)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientWardCapacityBelowOccupied, customErr.ClientMessage)
	})

	t.Run("missing ward", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("UpdateCapacity", ctx, testWardID, 12).Return(false, nil)
		wards.On("FindByID", ctx, testWardID).Return(nil, nil)

		err := uc.UpdateCapacity(ctx, testWardID, 12)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestWardUsecase_UpdateWard(t *testing.T) {
	ctx := context.Background()
	icu := "ICU"

	t.Run("capacity and descriptive fields land in one write", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, WardType: models.WardTypeGeneral, TotalBeds: 10, OccupiedBeds: 3}, nil).Once()
		wards.On("UpdateWard", ctx, mock.MatchedBy(func(ward *models.Ward) bool {
			return ward.TotalBeds == 12 && ward.WardType == models.WardTypeICU
		})).Return(true, nil).Once()
		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, WardType: models.WardTypeICU, TotalBeds: 12, OccupiedBeds: 3}, nil).Once()

		ward, err := uc.UpdateWard(ctx, adminSession, testWardID, &requests.UpdateWard{WardType: &icu, TotalBeds: intPtr(12)})
		require.NoError(t, err)

		assert.Equal(t, 12, ward.TotalBeds)
		assert.Equal(t, 9, ward.AvailableBeds)
		wards.AssertNotCalled(t, "UpdateCapacity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("shrinking below occupied beds changes nothing", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, WardType: models.WardTypeGeneral, TotalBeds: 10, OccupiedBeds: 5}, nil)
		wards.On("UpdateWard", ctx, mock.Anything).Return(false, nil).Once()

		_, err := uc.UpdateWard(ctx, adminSession, testWardID, &requests.UpdateWard{WardType: &icu, TotalBeds: intPtr(2)})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientWardCapacityBelowOccupied, customErr.ClientMessage)
		wards.AssertNumberOfCalls(t, "UpdateWard", 1)
		wards.AssertNotCalled(t, "UpdateCapacity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero beds is invalid input", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, TotalBeds: 10}, nil)

		_, err := uc.UpdateWard(ctx, adminSession, testWardID, &requests.UpdateWard{TotalBeds: intPtr(0)})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		wards.AssertNotCalled(t, "UpdateWard", mock.Anything, mock.Anything)
	})
}

func TestWardUsecase_DeleteWard(t *testing.T) {
	ctx := context.Background()
	wards := new(MockWardRepository)
	uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

	wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, TotalBeds: 10, OccupiedBeds: 1}, nil)
	wards.On("DeleteEmptyWard", ctx, testWardID).Return(false, nil)

	err := uc.DeleteWard(ctx, adminSession, testWardID)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientWardHasPatients, customErr.ClientMessage)
}

func TestWardUsecase_IncrementOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("full ward", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("IncrementOccupancy", ctx, testWardID, 1).Return(false, nil)
		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, TotalBeds: 2, OccupiedBeds: 2}, nil)

		err := uc.IncrementOccupancy(ctx, testWardID, 1)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientNoBedsAvailable, customErr.ClientMessage)
	})

	t.Run("below zero", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		wards.On("IncrementOccupancy", ctx, testWardID, -1).Return(false, nil)
		wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, TotalBeds: 2, OccupiedBeds: 0}, nil)

		err := uc.IncrementOccupancy(ctx, testWardID, -1)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		wards := new(MockWardRepository)
		uc := NewWardUsecase(wards, new(MockAdmissionRepository), nopAuditLogger{}, zap.NewNop())

		require.NoError(t, uc.IncrementOccupancy(ctx, testWardID, 0))
		wards.AssertNotCalled(t, "IncrementOccupancy", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWardUsecase_GetWardBeds(t *testing.T) {
	ctx := context.Background()
	wards := new(MockWardRepository)
	admissions := new(MockAdmissionRepository)
	uc := NewWardUsecase(wards, admissions, nopAuditLogger{}, zap.NewNop())

	wards.On("FindByID", ctx, testWardID).Return(&models.Ward{ID: testWardID, WardNumber: "A-101", TotalBeds: 3, OccupiedBeds: 1}, nil)
	admissions.On("FindActiveByWardID", ctx, testWardID).Return([]models.Admission{
		{ID: "adm-1", PatientID: "pat-1", BedNumber: 2, Status: models.AdmissionStatusAdmitted},
	}, nil)

	beds, err := uc.GetWardBeds(ctx, testWardID)
	require.NoError(t, err)

	require.Len(t, beds.Beds, 3)
	assert.False(t, beds.Beds[0].Occupied)
	assert.True(t, beds.Beds[1].Occupied)
	assert.Equal(t, "adm-1", beds.Beds[1].AdmissionID)
	assert.False(t, beds.Beds[2].Occupied)
	assert.Equal(t, 2, beds.AvailableBeds)
}
