package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicare-api/config"
	deliveryHttp "medicare-api/internal/delivery/http"
	"medicare-api/internal/delivery/http/handler"
	"medicare-api/internal/delivery/http/middleware"
	"medicare-api/internal/infrastructure/cache"
	"medicare-api/internal/infrastructure/database"
	"medicare-api/internal/infrastructure/messaging"
	"medicare-api/internal/repository"
	"medicare-api/internal/service"
	"medicare-api/internal/usecase"
	"medicare-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	serverTimeout   = 45 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Producer    *messaging.Producer
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized.
// Startup order: config, logger, database (with retry), migrations, seed,
// Redis, Kafka, HTTP server.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger()
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, gormLogLevel(cfg.App))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.AutoMigrate(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if _, err := database.SeedDoctors(context.Background(), db, repository.NewDoctorRepository()); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Kafka is optional; without brokers domain events are dropped
	var publisher service.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := messaging.NewProducer(cfg.Kafka)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		app.Producer = producer
		publisher = producer
	} else {
		logrus.Info("KAFKA_BROKERS not set, domain events disabled")
	}

	// Initialize all layers
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      NewHTTPHandler(cfg, db, redisClient, publisher, logrus.StandardLogger()),
		ReadTimeout:  serverTimeout,
		WriteTimeout: serverTimeout,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func gormLogLevel(cfg config.AppConfig) logger.LogLevel {
	if cfg.IsProduction() {
		return logger.Warn
	}
	return logger.Info
}

// NewHTTPHandler wires repositories, services, use cases and handlers into
// the router. publisher may be nil.
func NewHTTPHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher service.Publisher, log *logrus.Logger) http.Handler {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	notificationRepo := repository.NewNotificationRepository(redisClient, cfg.Notification.TTL)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	ratingService := service.NewRatingService(db, log, doctorRepo, reviewRepo)
	notificationService := service.NewNotificationService(notificationRepo, log)
	eventService := service.NewEventService(publisher, log)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, doctorRepo, auditService, notificationService, eventService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, reviewRepo, auditService)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, doctorRepo, appointmentRepo, auditService, ratingService, eventService)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, userRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		appointmentHandler,
		userHandler,
		doctorHandler,
		reviewHandler,
		notificationHandler,
		auditLogHandler,
		corsMiddleware,
		loggingMiddleware,
	)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, kafka)
func (app *App) Close() {
	if app.Producer != nil {
		if err := app.Producer.Close(); err != nil {
			logrus.Warnf("Failed to close Kafka producer: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
