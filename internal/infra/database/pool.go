package database

import (
	"database/sql"
	"errors"
	"time"

	"todo-api/pkg/resource"
)

const DefaultMaxOpenConns = 5

// Config holds the connection string and pool bounds shared by both drivers.
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

var ErrMissingURL = errors.New("database url is required (app.db.url / DATABASE_URL)")

// ConfigFromResource reads app.db.* properties.
func ConfigFromResource() Config {
	maxOpen := resource.GetInt("app.db.pool.max-open")
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	maxIdle := resource.GetInt("app.db.pool.max-idle")
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	return Config{
		URL:             resource.GetString("app.db.url"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: resource.GetDuration("app.db.pool.max-lifetime"),
	}
}

func (c Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}
	return nil
}

// ApplyPool bounds the pool of db.
func (c Config) ApplyPool(db *sql.DB) {
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
}
