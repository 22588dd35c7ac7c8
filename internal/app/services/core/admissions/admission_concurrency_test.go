package admissions

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wardC = "650000000000000000000c01"

// steppedAdmissionRepository lines two requests up so both read the admission
// before either writes, then lets the writes land one after the other.
type steppedAdmissionRepository struct {
	*fakeAdmissionRepository
	reads      int32
	writes     int32
	bothRead   sync.WaitGroup
	firstWrite chan struct{}
}

func newSteppedAdmissionRepository(inner *fakeAdmissionRepository) *steppedAdmissionRepository {
	repo := &steppedAdmissionRepository{fakeAdmissionRepository: inner, firstWrite: make(chan struct{})}
	repo.bothRead.Add(2)
	return repo
}

func (r *steppedAdmissionRepository) FindByID(ctx context.Context, admissionID string) (*models.Admission, error) {
	admission, err := r.fakeAdmissionRepository.FindByID(ctx, admissionID)
	if atomic.AddInt32(&r.reads, 1) <= 2 {
		r.bothRead.Done()
		r.bothRead.Wait()
	}
	return admission, err
}

func (r *steppedAdmissionRepository) Transfer(ctx context.Context, update models.TransferUpdate) (bool, error) {
	done := r.awaitTurn()
	defer done()
	return r.fakeAdmissionRepository.Transfer(ctx, update)
}

func (r *steppedAdmissionRepository) Discharge(ctx context.Context, update models.DischargeUpdate) (bool, error) {
	done := r.awaitTurn()
	defer done()
	return r.fakeAdmissionRepository.Discharge(ctx, update)
}

func (r *steppedAdmissionRepository) awaitTurn() (done func()) {
	if atomic.AddInt32(&r.writes, 1) == 1 {
		return func() { close(r.firstWrite) }
	}
	select {
	case <-r.firstWrite:
	case <-time.After(2 * time.Second):
	}
	return func() {}
}

func (f *fixture) heldBeds(wardIDs ...string) int {
	total := 0
	for _, wardID := range wardIDs {
		total += f.wards.occupied(wardID)
	}
	return total
}

func threeWardFixture(t *testing.T) *fixture {
	return newFixture(t,
		models.Ward{ID: wardA, WardNumber: "A-101", TotalBeds: 2, Status: models.WardStatusActive},
		models.Ward{ID: wardB, WardNumber: "B-201", TotalBeds: 2, Status: models.WardStatusActive},
		models.Ward{ID: wardC, WardNumber: "C-301", TotalBeds: 2, Status: models.WardStatusActive},
	)
}

func runTogether(first, second func() error) (firstErr, secondErr error) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		firstErr = first()
	}()
	go func() {
		defer wg.Done()
		secondErr = second()
	}()
	wg.Wait()
	return firstErr, secondErr
}

func TestAdmissionTransitions_InterleavedRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("transfer and discharge of the same admission", func(t *testing.T) {
		f := threeWardFixture(t)
		admissionID := f.admit(t, 0, wardA, 1)
		f.usecase.AdmissionRepository = newSteppedAdmissionRepository(f.admissions)

		transferErr, dischargeErr := runTogether(
			func() error {
				_, err := f.usecase.TransferPatient(ctx, doctorSession, &requests.TransferPatient{AdmissionID: admissionID, NewWardID: wardB, NewBedNumber: 1})
				return err
			},
			func() error {
				_, err := f.usecase.DischargePatient(ctx, doctorSession, &requests.DischargePatient{AdmissionID: admissionID})
				return err
			},
		)

		assert.True(t, (transferErr == nil) != (dischargeErr == nil), "transfer=%v discharge=%v", transferErr, dischargeErr)
		assert.Equal(t, f.admissions.activeCount(), f.heldBeds(wardA, wardB, wardC))

		stored := f.admissions.get(admissionID)
		if transferErr == nil {
			assert.True(t, stored.Active)
			assert.Equal(t, wardB, stored.WardID)
			assert.Equal(t, 0, f.wards.occupied(wardA))
			assert.Equal(t, 1, f.wards.occupied(wardB))
			assert.Equal(t, constvars.ErrClientAdmissionChanged, clientMessage(t, dischargeErr))
		} else {
			assert.False(t, stored.Active)
			assert.Equal(t, wardA, stored.WardID)
			assert.Equal(t, 0, f.heldBeds(wardA, wardB))
			assert.Equal(t, constvars.StatusNotFound, statusCode(t, transferErr))
		}
	})

	t.Run("two transfers of the same admission to different wards", func(t *testing.T) {
		f := threeWardFixture(t)
		admissionID := f.admit(t, 0, wardA, 1)
		f.usecase.AdmissionRepository = newSteppedAdmissionRepository(f.admissions)

		toB, toC := runTogether(
			func() error {
				_, err := f.usecase.TransferPatient(ctx, doctorSession, &requests.TransferPatient{AdmissionID: admissionID, NewWardID: wardB, NewBedNumber: 1})
				return err
			},
			func() error {
				_, err := f.usecase.TransferPatient(ctx, doctorSession, &requests.TransferPatient{AdmissionID: admissionID, NewWardID: wardC, NewBedNumber: 1})
				return err
			},
		)

		assert.True(t, (toB == nil) != (toC == nil), "toB=%v toC=%v", toB, toC)
		assert.Equal(t, 1, f.heldBeds(wardA, wardB, wardC))
		assert.Equal(t, 0, f.wards.occupied(wardA))

		stored := f.admissions.get(admissionID)
		require.Len(t, stored.TransferHistory, 1)
		if toB == nil {
			assert.Equal(t, wardB, stored.WardID)
			assert.Equal(t, constvars.ErrClientAdmissionChanged, clientMessage(t, toC))
		} else {
			assert.Equal(t, wardC, stored.WardID)
			assert.Equal(t, constvars.ErrClientAdmissionChanged, clientMessage(t, toB))
		}
	})

	t.Run("two discharges of the same admission", func(t *testing.T) {
		f := threeWardFixture(t)
		admissionID := f.admit(t, 0, wardA, 1)
		f.admit(t, 1, wardA, 2)
		f.usecase.AdmissionRepository = newSteppedAdmissionRepository(f.admissions)

		first, second := runTogether(
			func() error {
				_, err := f.usecase.DischargePatient(ctx, doctorSession, &requests.DischargePatient{AdmissionID: admissionID})
				return err
			},
			func() error {
				_, err := f.usecase.DischargePatient(ctx, doctorSession, &requests.DischargePatient{AdmissionID: admissionID})
				return err
			},
		)

		assert.True(t, (first == nil) != (second == nil), "first=%v second=%v", first, second)
		assert.Equal(t, 1, f.wards.occupied(wardA))
		assert.Equal(t, f.admissions.activeCount(), f.heldBeds(wardA, wardB, wardC))
	})
}
