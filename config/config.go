package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Notification NotificationConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	URL            string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type NotificationConfig struct {
	TTL time.Duration
}

// IsProduction reports whether APP_ENV is set to production.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* settings.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable connect_timeout=%d",
		c.Host, c.User, c.Password, c.Name, c.Port, int(c.ConnectTimeout.Seconds()),
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "medicare")
	v.SetDefault("DB_MAX_RETRIES", 3)
	v.SetDefault("DB_RETRY_DELAY", "5s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC", "medicare.events")
	v.SetDefault("NOTIFICATION_TTL", "720h")
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	retryDelay, err := time.ParseDuration(v.GetString("DB_RETRY_DELAY"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(v.GetString("DB_CONNECT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	notificationTTL, err := time.ParseDuration(v.GetString("NOTIFICATION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_TTL: %w", err)
	}

	port := v.GetString("APP_PORT")
	if port == "" {
		port = v.GetString("PORT")
	}
	if port == "" {
		port = "5000"
	}

	var brokers []string
	for _, b := range strings.Split(v.GetString("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	config := &Config{
		App: AppConfig{
			Port: port,
			Env:  v.GetString("APP_ENV"),
		},
		DB: DBConfig{
			URL:            v.GetString("DATABASE_URL"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			MaxRetries:     v.GetInt("DB_MAX_RETRIES"),
			RetryDelay:     retryDelay,
			ConnectTimeout: connectTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Notification: NotificationConfig{
			TTL: notificationTTL,
		},
	}

	return config, nil
}
