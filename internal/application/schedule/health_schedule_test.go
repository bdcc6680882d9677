package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
)

type countingHealthUseCase struct {
	calls       atomic.Int32
	hadDeadline atomic.Bool
	response    model.HealthResponse
}

func (c *countingHealthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	c.calls.Add(1)
	_, ok := ctx.Deadline()
	c.hadDeadline.Store(ok)
	return c.response
}

func TestReportHealth_Up(t *testing.T) {
	useCase := &countingHealthUseCase{response: model.HealthResponse{
		Status:   model.StatusUp,
		Database: model.ComponentUp(nil),
	}}

	NewHealthReportScheduler(useCase, "@every 1m").ReportHealth()

	assert.Equal(t, int32(1), useCase.calls.Load())
	assert.True(t, useCase.hadDeadline.Load())
}

func TestReportHealth_Down(t *testing.T) {
	useCase := &countingHealthUseCase{response: model.HealthResponse{
		Status:   model.StatusDown,
		Database: model.ComponentDown(errors.New("connection refused")),
	}}

	assert.NotPanics(t, NewHealthReportScheduler(useCase, "@every 1m").ReportHealth)
	assert.Equal(t, int32(1), useCase.calls.Load())
}

func TestInitHealthReportTasks(t *testing.T) {
	useCase := &countingHealthUseCase{}

	t.Run("empty expression disables", func(t *testing.T) {
		scheduler := NewHealthReportScheduler(useCase, "")
		assert.NoError(t, scheduler.InitHealthReportTasks())
		assert.Empty(t, scheduler.cron.Entries())
	})

	t.Run("invalid expression", func(t *testing.T) {
		scheduler := NewHealthReportScheduler(useCase, "not a cron")
		assert.Error(t, scheduler.InitHealthReportTasks())
	})

	t.Run("valid expression", func(t *testing.T) {
		scheduler := NewHealthReportScheduler(useCase, "@every 1h")
		assert.NoError(t, scheduler.InitHealthReportTasks())
		assert.Len(t, scheduler.cron.Entries(), 1)
		scheduler.Stop()
	})
}
