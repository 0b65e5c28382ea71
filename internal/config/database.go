package config

import (
	"time"

	"travelblog-backend/internal/infrastructure/database"
)

// DatabaseConfigFor maps the env-driven DatabaseConfig onto the pool
// configuration the database package expects.
func (c *Config) DatabaseConfigFor() *database.DBConfig {
	return &database.DBConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Username: c.Database.User,
		Password: c.Database.Password,
		DBName:   c.Database.Database,
		SSLMode:  c.Database.SSLMode,

		MaxConns:          int32(c.Database.MaxConns),
		MinConns:          int32(c.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	}
}
