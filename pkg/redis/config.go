package redis

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds the connection settings of the events Redis.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisConfig returns a local single-node configuration with small pools.
func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		MinIdleConns: 1,
		MaxActive:    4,
		MaxRetries:   2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithMaxActive(maxActive int) *Config {
	c.MaxActive = maxActive
	return c
}

func (c *Config) WithDialTimeout(dialTimeout time.Duration) *Config {
	c.DialTimeout = dialTimeout
	return c
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) Validate() error {
	switch {
	case c.Host == "":
		return errors.New("redis host is required")
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("redis port %d out of range", c.Port)
	case c.Database < 0 || c.Database > 15:
		return fmt.Errorf("redis database %d out of range 0-15", c.Database)
	case c.MinIdleConns < 0 || c.MaxActive < 0 || c.MaxRetries < 0:
		return errors.New("redis pool sizes must not be negative")
	case c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0:
		return errors.New("redis timeouts must not be negative")
	}
	return nil
}
