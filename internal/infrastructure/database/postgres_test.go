package database

import (
	"errors"
	"testing"

	"medicare-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectWithRetryGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	cfg := config.DBConfig{MaxRetries: 3}

	db, err := ConnectWithRetry(cfg, func(config.DBConfig) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	})

	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, attempts)
}

func TestConnectWithRetrySucceedsOnLaterAttempt(t *testing.T) {
	attempts := 0
	want := &gorm.DB{}
	cfg := config.DBConfig{MaxRetries: 3}

	db, err := ConnectWithRetry(cfg, func(config.DBConfig) (*gorm.DB, error) {
		attempts++
		if attempts < 2 {
			return nil, errors.New("not yet")
		}
		return want, nil
	})

	require.NoError(t, err)
	assert.Same(t, want, db)
	assert.Equal(t, 2, attempts)
}

func TestConnectWithRetryAlwaysTriesOnce(t *testing.T) {
	attempts := 0

	_, err := ConnectWithRetry(config.DBConfig{}, func(config.DBConfig) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("down")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
