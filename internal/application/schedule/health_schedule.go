package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type HealthReportScheduler struct {
	cron           *cron.Cron
	useCase        health.UseCase
	cronExpression string
	timeout        time.Duration
}

func NewHealthReportScheduler(useCase health.UseCase, cronExpression string) *HealthReportScheduler {
	return &HealthReportScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		timeout:        5 * time.Second,
	}
}

// InitHealthReportTasks schedules the health report. An empty expression leaves the scheduler stopped.
func (scheduler *HealthReportScheduler) InitHealthReportTasks() error {
	if scheduler.cronExpression == "" {
		return nil
	}
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.ReportHealth); err != nil {
		return err
	}
	scheduler.cron.Start()
	log.Info(msg.GetMessage("health.cron.started", scheduler.cronExpression))
	return nil
}

// ReportHealth logs the current component status, at warn level when something is down.
func (scheduler *HealthReportScheduler) ReportHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduler.timeout)
	defer cancel()

	report := scheduler.useCase.CheckHealth(ctx)
	fields := []zap.Field{
		zap.String("database", string(report.Database.Status)),
		zap.String("events", string(report.Events.Status)),
	}

	if report.Status == model.StatusDown {
		log.Warn(msg.GetMessage("health.cron.down", report.Database.Details["message"], report.Events.Details["message"]), fields...)
		return
	}
	log.Debug(msg.GetMessage("health.cron.up"), fields...)
}

// Stop halts the scheduler and waits for a running report to finish.
func (scheduler *HealthReportScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}
