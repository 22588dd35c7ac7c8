package admissions

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores that enforce the same guards as the Mongo repositories.

type fakeWardRepository struct {
	mu    sync.Mutex
	wards map[string]*models.Ward
}

func newFakeWardRepository(wards ...models.Ward) *fakeWardRepository {
	repo := &fakeWardRepository{wards: make(map[string]*models.Ward)}
	for i := range wards {
		ward := wards[i]
		repo.wards[ward.ID] = &ward
	}
	return repo
}

func (r *fakeWardRepository) occupied(wardID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wards[wardID].OccupiedBeds
}

func (r *fakeWardRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeWardRepository) CreateWard(ctx context.Context, ward *models.Ward) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ward.ID = primitive.NewObjectID().Hex()
	copied := *ward
	r.wards[ward.ID] = &copied
	return ward.ID, nil
}

func (r *fakeWardRepository) FindByID(ctx context.Context, wardID string) (*models.Ward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ward, ok := r.wards[wardID]
	if !ok {
		return nil, nil
	}
	copied := *ward
	return &copied, nil
}

func (r *fakeWardRepository) FindByWardNumber(ctx context.Context, wardNumber string) (*models.Ward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ward := range r.wards {
		if ward.WardNumber == wardNumber {
			copied := *ward
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWardRepository) FindAll(ctx context.Context, filter models.WardFilter) ([]models.Ward, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wards := make([]models.Ward, 0, len(r.wards))
	for _, ward := range r.wards {
		wards = append(wards, *ward)
	}
	return wards, len(wards), nil
}

func (r *fakeWardRepository) UpdateWard(ctx context.Context, ward *models.Ward) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.wards[ward.ID]
	if !ok || stored.OccupiedBeds > ward.TotalBeds {
		return false, nil
	}
	occupied := stored.OccupiedBeds
	*stored = *ward
	stored.OccupiedBeds = occupied
	return true, nil
}

func (r *fakeWardRepository) UpdateCapacity(ctx context.Context, wardID string, totalBeds int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ward, ok := r.wards[wardID]
	if !ok || ward.OccupiedBeds > totalBeds {
		return false, nil
	}
	ward.TotalBeds = totalBeds
	return true, nil
}

func (r *fakeWardRepository) IncrementOccupancy(ctx context.Context, wardID string, delta int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ward, ok := r.wards[wardID]
	if !ok {
		return false, nil
	}
	next := ward.OccupiedBeds + delta
	if next < 0 || next > ward.TotalBeds {
		return false, nil
	}
	ward.OccupiedBeds = next
	return true, nil
}

func (r *fakeWardRepository) DeleteEmptyWard(ctx context.Context, wardID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ward, ok := r.wards[wardID]
	if !ok || ward.OccupiedBeds != 0 {
		return false, nil
	}
	delete(r.wards, wardID)
	return true, nil
}

type fakeAdmissionRepository struct {
	mu          sync.Mutex
	admissions  map[string]*models.Admission
	createError error
}

func newFakeAdmissionRepository() *fakeAdmissionRepository {
	return &fakeAdmissionRepository{admissions: make(map[string]*models.Admission)}
}

func (r *fakeAdmissionRepository) get(admissionID string) models.Admission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAdmission(r.admissions[admissionID])
}

func (r *fakeAdmissionRepository) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, admission := range r.admissions {
		if admission.Active {
			count++
		}
	}
	return count
}

func (r *fakeAdmissionRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeAdmissionRepository) CreateAdmission(ctx context.Context, admission *models.Admission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createError != nil {
		return "", r.createError
	}
	for _, existing := range r.admissions {
		if !existing.Active {
			continue
		}
		if existing.PatientID == admission.PatientID {
			return "", exceptions.ErrPatientAlreadyAdmitted(errors.New("E11000 duplicate key uniq_active_patient"))
		}
		if existing.WardID == admission.WardID && existing.BedNumber == admission.BedNumber {
			return "", exceptions.ErrBedOccupied(errors.New("E11000 duplicate key uniq_active_bed"))
		}
	}
	stored := cloneAdmission(admission)
	stored.ID = primitive.NewObjectID().Hex()
	r.admissions[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeAdmissionRepository) FindByID(ctx context.Context, admissionID string) (*models.Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admission, ok := r.admissions[admissionID]
	if !ok {
		return nil, nil
	}
	copied := cloneAdmission(admission)
	return &copied, nil
}

func (r *fakeAdmissionRepository) FindActiveByPatientID(ctx context.Context, patientID string) (*models.Admission, error) {
	return r.findActive(func(a *models.Admission) bool { return a.PatientID == patientID })
}

func (r *fakeAdmissionRepository) FindActiveByBed(ctx context.Context, wardID string, bedNumber int) (*models.Admission, error) {
	return r.findActive(func(a *models.Admission) bool { return a.WardID == wardID && a.BedNumber == bedNumber })
}

func (r *fakeAdmissionRepository) FindActiveByWardID(ctx context.Context, wardID string) ([]models.Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Admission, 0)
	for _, admission := range r.admissions {
		if admission.Active && admission.WardID == wardID {
			result = append(result, cloneAdmission(admission))
		}
	}
	return result, nil
}

func (r *fakeAdmissionRepository) FindAll(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Admission, 0)
	for _, admission := range r.admissions {
		if filter.PatientID != "" && admission.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && string(admission.Status) != filter.Status {
			continue
		}
		result = append(result, cloneAdmission(admission))
	}
	return result, len(result), nil
}

func (r *fakeAdmissionRepository) Transfer(ctx context.Context, update models.TransferUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admission, ok := r.admissions[update.AdmissionID]
	if !ok || !admission.Active || !statusIn(admission.Status, models.AdmissionStatusesAllowedInto(models.AdmissionStatusTransferred)) {
		return false, nil
	}
	if admission.WardID != update.FromWardID || admission.BedNumber != update.FromBedNumber {
		return false, nil
	}
	for _, existing := range r.admissions {
		if existing.Active && existing.ID != admission.ID && existing.WardID == update.NewWardID && existing.BedNumber == update.NewBedNumber {
			return false, exceptions.ErrBedOccupied(errors.New("E11000 duplicate key uniq_active_bed"))
		}
	}
	admission.WardID = update.NewWardID
	admission.BedNumber = update.NewBedNumber
	admission.Status = models.AdmissionStatusTransferred
	admission.StatusHistory = append(admission.StatusHistory, update.History)
	admission.TransferHistory = append(admission.TransferHistory, update.Transfer)
	return true, nil
}

func (r *fakeAdmissionRepository) Discharge(ctx context.Context, update models.DischargeUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admission, ok := r.admissions[update.AdmissionID]
	if !ok || !admission.Active || !statusIn(admission.Status, models.AdmissionStatusesAllowedInto(models.AdmissionStatusDischarged)) {
		return false, nil
	}
	if admission.WardID != update.WardID || admission.BedNumber != update.BedNumber {
		return false, nil
	}
	dischargeDate := update.DischargeDate
	admission.Status = models.AdmissionStatusDischarged
	admission.Active = false
	admission.ActualDischargeDate = &dischargeDate
	admission.DischargeNotes = update.DischargeNotes
	admission.DischargeSummary = update.DischargeSummary
	admission.StatusHistory = append(admission.StatusHistory, update.History)
	return true, nil
}

func (r *fakeAdmissionRepository) findActive(match func(*models.Admission) bool) (*models.Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admission := range r.admissions {
		if admission.Active && match(admission) {
			copied := cloneAdmission(admission)
			return &copied, nil
		}
	}
	return nil, nil
}

func cloneAdmission(admission *models.Admission) models.Admission {
	copied := *admission
	copied.StatusHistory = append([]models.StatusHistoryEntry(nil), admission.StatusHistory...)
	copied.TransferHistory = append([]models.TransferHistoryEntry(nil), admission.TransferHistory...)
	return copied
}

func statusIn(status models.AdmissionStatus, allowed []models.AdmissionStatus) bool {
	for _, candidate := range allowed {
		if candidate == status {
			return true
		}
	}
	return false
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func newFakePatientRepository(patients ...models.Patient) *fakePatientRepository {
	repo := &fakePatientRepository{patients: make(map[string]*models.Patient)}
	for i := range patients {
		patient := patients[i]
		repo.patients[patient.ID] = &patient
	}
	return repo
}

func (r *fakePatientRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	patient.ID = primitive.NewObjectID().Hex()
	r.patients[patient.ID] = patient
	return patient.ID, nil
}

func (r *fakePatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepository) FindByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return nil, nil
}

func (r *fakePatientRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (r *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return nil
}

// fakeLocker is an in-process SetNX.
type fakeLocker struct {
	mu      sync.Mutex
	held    map[string]string
	lockErr error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lockErr != nil {
		return false, "", l.lockErr
	}
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	l.held[key] = value
	return true, value, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
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
