package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func up(ctx context.Context) error { return nil }

func down(ctx context.Context) error { return errors.New("connection refused") }

func TestHealthUsecase_Check(t *testing.T) {
	startedAt := time.Now().Add(-90 * time.Second)

	t.Run("all dependencies up", func(t *testing.T) {
		uc := NewHealthUsecase("1.2.0", startedAt, []Dependency{
			{Name: "mongodb", Ping: up},
			{Name: "redis", Ping: up},
		}, zap.NewNop())

		result := uc.Check(context.Background())

		assert.Equal(t, "ok", result.Status)
		assert.Equal(t, "1.2.0", result.Version)
		assert.Equal(t, map[string]string{"mongodb": "connected", "redis": "connected"}, result.Dependencies)
		assert.Equal(t, "1m30s", result.Uptime)
	})

	t.Run("one dependency down degrades", func(t *testing.T) {
		uc := NewHealthUsecase("1.2.0", startedAt, []Dependency{
			{Name: "mongodb", Ping: up},
			{Name: "redis", Ping: down},
		}, zap.NewNop())

		result := uc.Check(context.Background())

		assert.Equal(t, "degraded", result.Status)
		assert.Equal(t, "disconnected", result.Dependencies["redis"])
		assert.Equal(t, "connected", result.Dependencies["mongodb"])
	})
}
