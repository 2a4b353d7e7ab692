package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, 3, cfg.DB.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.DB.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "medicare.events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 720*time.Hour, cfg.Notification.TTL)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("PORT", "8080")
	v.Set("DATABASE_URL", "postgres://medicare:secret@db:5432/medicare")
	v.Set("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	v.Set("DB_RETRY_DELAY", "250ms")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres://medicare:secret@db:5432/medicare", cfg.DB.DSN())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, cfg.DB.RetryDelay)
}

func TestFromViperRejectsBadDuration(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_RETRY_DELAY", "soon")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSNFromParts(t *testing.T) {
	cfg := DBConfig{
		Host:           "localhost",
		Port:           "5432",
		User:           "postgres",
		Password:       "pw",
		Name:           "medicare",
		ConnectTimeout: 30 * time.Second,
	}

	assert.Equal(t, "host=localhost user=postgres password=pw dbname=medicare port=5432 sslmode=disable connect_timeout=30", cfg.DSN())
}
