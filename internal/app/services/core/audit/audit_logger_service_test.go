package audit

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func admitEntry() models.AuditLog {
	return models.AuditLog{
		Action:       models.AuditActionAdmit,
		ResourceType: models.AuditResourceAdmission,
		ResourceID:   "admission-1",
		PatientID:    "patient-1",
		PerformedBy:  models.Actor{UserID: "doctor-1", UserRole: constvars.RoleDoctor},
	}
}

func TestLogger_RecordFillsRequestContext(t *testing.T) {
	publisher := &fakePublisher{}
	logger := NewLogger(publisher, newMemoryAuditRepository(), metrics.NewCollector(), zap.NewNop(), 8, time.Second)
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42")

	logger.Record(ctx, admitEntry())
	logger.Start(context.Background())()

	require.Equal(t, 1, publisher.count())
	published := publisher.published[0]
	assert.Equal(t, "req-42", published.RequestID)
	assert.False(t, published.Timestamp.IsZero())
	assert.NotEmpty(t, published.ID)
}

func TestLogger_RejectsPatientEntryWithoutPatient(t *testing.T) {
	publisher := &fakePublisher{}
	logger := NewLogger(publisher, newMemoryAuditRepository(), metrics.NewCollector(), zap.NewNop(), 8, time.Second)

	entry := admitEntry()
	entry.PatientID = ""
	logger.Record(context.Background(), entry)

	ward := models.AuditLog{Action: models.AuditActionCreate, ResourceType: models.AuditResourceWard, ResourceID: "ward-1"}
	logger.Record(context.Background(), ward)
	logger.Start(context.Background())()

	require.Equal(t, 1, publisher.count())
	assert.Equal(t, models.AuditResourceWard, publisher.published[0].ResourceType)
}

func TestLogger_FullBufferDropsWithoutBlocking(t *testing.T) {
	collector := metrics.NewCollector()
	before := testutil.ToFloat64(collector.AuditBufferDropped)
	logger := NewLogger(&fakePublisher{}, newMemoryAuditRepository(), collector, zap.NewNop(), 2, time.Second)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			logger.Record(context.Background(), admitEntry())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
	assert.Len(t, logger.buffer, 2)
	assert.Equal(t, before+3, testutil.ToFloat64(collector.AuditBufferDropped))
}

func TestLogger_PublishFailureStoresDirectly(t *testing.T) {
	repository := newMemoryAuditRepository()
	logger := NewLogger(&fakePublisher{err: errBrokerDown}, repository, metrics.NewCollector(), zap.NewNop(), 8, time.Second)

	logger.Record(context.Background(), admitEntry())
	logger.Record(context.Background(), admitEntry())
	logger.Start(context.Background())()

	assert.Equal(t, 2, repository.count())
}

func TestLogger_WithoutPublisherStoresDirectly(t *testing.T) {
	repository := newMemoryAuditRepository()
	logger := NewLogger(nil, repository, metrics.NewCollector(), zap.NewNop(), 8, time.Second)
	stop := logger.Start(context.Background())

	logger.Record(context.Background(), admitEntry())

	require.Eventually(t, func() bool { return repository.count() == 1 }, time.Second, 10*time.Millisecond)
	stop()
	stop()
}

func TestLogger_RecordNeverFailsTheCaller(t *testing.T) {
	repository := newMemoryAuditRepository()
	repository.insertErr = errBrokerDown
	logger := NewLogger(&fakePublisher{err: errBrokerDown}, repository, metrics.NewCollector(), zap.NewNop(), 8, time.Second)

	assert.NotPanics(t, func() {
		logger.Record(context.Background(), admitEntry())
		logger.Start(context.Background())()
	})
	assert.Equal(t, 0, repository.count())
}
