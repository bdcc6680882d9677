package health

import (
	"context"
	"time"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/event"
	"todo-api/internal/domain/model"
)

const checkTimeout = 2 * time.Second

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	eventGateway event.Publisher
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, eventGateway event.Publisher) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		eventGateway: eventGateway,
	}
}

// CheckHealth reports DOWN when the database is down or the publisher is down. A disabled publisher reports UNKNOWN and is ignored.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	dbHealth := useCase.dbGateway.Health(ctx)
	eventHealth := useCase.eventGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || eventHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Events:   eventHealth,
	}
}
