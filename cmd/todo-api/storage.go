package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/infra/database"
	"todo-api/internal/infra/database/gormdb"
	"todo-api/internal/infra/database/sqldb"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

const (
	driverSQL  = "sql"
	driverGorm = "gorm"
)

type storage struct {
	todos  db.TodoGateway
	health db.HealthDBGateway
	close  func() error
}

// openStorage connects to PostgreSQL through the driver named by app.db.driver.
func openStorage(ctx context.Context) (*storage, error) {
	cfg := database.ConfigFromResource()
	driver := strings.ToLower(resource.GetStringOrDefault("app.db.driver", driverSQL))

	switch driver {
	case driverSQL:
		conn, err := sqldb.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &storage{
			todos:  db.NewSQLTodoGateway(conn),
			health: db.NewSQLHealthDBGateway(conn),
			close:  conn.Close,
		}, nil
	case driverGorm:
		conn, err := gormdb.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access gorm connection pool: %w", err)
		}
		return &storage{
			todos:  db.NewGormTodoGateway(conn),
			health: db.NewGormHealthDBGateway(conn),
			close:  sqlDB.Close,
		}, nil
	default:
		return nil, errors.New(msg.GetMessage("db.error.driver", driver))
	}
}
