package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"todo-api/internal/infra/database"
)

// Open connects through lib/pq, bounds the pool and verifies the connection.
func Open(ctx context.Context, cfg database.Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	cfg.ApplyPool(db)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}
