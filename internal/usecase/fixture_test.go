package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/repository"
	repoImpl "medicare-api/internal/repository"
	"medicare-api/internal/service"
	"medicare-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, value interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, value.(service.Event))
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type fixture struct {
	db               *gorm.DB
	publisher        *recordingPublisher
	notificationRepo repository.NotificationRepository
	doctorRepo       repository.DoctorRepository
	auditLogRepo     repository.AuditLogRepository

	appointments  AppointmentUsecase
	users         UserUsecase
	doctors       DoctorUsecase
	reviews       ReviewUsecase
	notifications NotificationUsecase
	auditLogs     AuditLogUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	_, redisClient := testutil.NewTestRedis(t)
	log := testutil.NewTestLogger()
	publisher := &recordingPublisher{}

	userRepo := repoImpl.NewUserRepository()
	doctorRepo := repoImpl.NewDoctorRepository()
	appointmentRepo := repoImpl.NewAppointmentRepository()
	reviewRepo := repoImpl.NewReviewRepository()
	auditLogRepo := repoImpl.NewAuditLogRepository()
	notificationRepo := repoImpl.NewNotificationRepository(redisClient, time.Hour)

	auditService := service.NewAuditService(log, auditLogRepo)
	ratingService := service.NewRatingService(db, log, doctorRepo, reviewRepo)
	notificationService := service.NewNotificationService(notificationRepo, log)
	eventService := service.NewEventService(publisher, log)

	return &fixture{
		db:               db,
		publisher:        publisher,
		notificationRepo: notificationRepo,
		doctorRepo:       doctorRepo,
		auditLogRepo:     auditLogRepo,
		appointments:     NewAppointmentUsecase(db, log, appointmentRepo, userRepo, doctorRepo, auditService, notificationService, eventService),
		users:            NewUserUsecase(db, log, userRepo, auditService),
		doctors:          NewDoctorUsecase(db, log, doctorRepo, reviewRepo, auditService),
		reviews:          NewReviewUsecase(db, log, reviewRepo, doctorRepo, appointmentRepo, auditService, ratingService, eventService),
		notifications:    NewNotificationUsecase(db, log, notificationRepo, userRepo),
		auditLogs:        NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

func bookingRequest(email, doctor, date, clock string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Name:   "Jane Doe",
		Email:  email,
		Phone:  "+1 (555) 987-6543",
		Doctor: doctor,
		Date:   date,
		Time:   clock,
		Reason: "Chest pain",
	}
}

func (f *fixture) book(t *testing.T, req *dto.CreateAppointmentRequest) *dto.AppointmentResponse {
	t.Helper()
	resp, err := f.appointments.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	return resp
}
