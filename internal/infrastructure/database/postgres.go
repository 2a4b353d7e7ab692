package database

import (
	"context"
	"fmt"
	"time"

	"medicare-api/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultConnectTimeout = 30 * time.Second

// Opener opens and verifies a single database connection attempt.
type Opener func(cfg config.DBConfig) (*gorm.DB, error)

// NewPostgresConnection connects to PostgreSQL, retrying up to cfg.MaxRetries
// times with a fixed cfg.RetryDelay between attempts.
func NewPostgresConnection(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	return ConnectWithRetry(cfg, func(cfg config.DBConfig) (*gorm.DB, error) {
		return openPostgres(cfg, logLevel)
	})
}

func ConnectWithRetry(cfg config.DBConfig, open Opener) (*gorm.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		logrus.Infof("Attempting to connect to database (attempt %d/%d)", attempt, maxRetries)

		db, err := open(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logrus.Warnf("Database connection attempt %d failed: %+v", attempt, err)

		if attempt < maxRetries {
			time.Sleep(cfg.RetryDelay)
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetries, lastErr)
}

func openPostgres(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
