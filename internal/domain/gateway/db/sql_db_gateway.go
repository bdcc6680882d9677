package db

import (
	"context"
	"database/sql"
	"strconv"

	"todo-api/internal/domain/model"
)

type SQLHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ComponentDown(err)
	}
	return model.ComponentUp(poolDetails(gateway.DB.Stats()))
}

func poolDetails(stats sql.DBStats) map[string]string {
	return map[string]string{
		"max_open_connections": strconv.Itoa(stats.MaxOpenConnections),
		"open_connections":     strconv.Itoa(stats.OpenConnections),
		"in_use":               strconv.Itoa(stats.InUse),
		"idle":                 strconv.Itoa(stats.Idle),
	}
}
