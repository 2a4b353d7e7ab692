package http

import (
	"net/http"

	"medicare-api/internal/delivery/http/handler"
	"medicare-api/internal/delivery/http/middleware"
	"medicare-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	userHandler         *handler.UserHandler
	doctorHandler       *handler.DoctorHandler
	reviewHandler       *handler.ReviewHandler
	notificationHandler *handler.NotificationHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	reviewHandler *handler.ReviewHandler,
	notificationHandler *handler.NotificationHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		userHandler:         userHandler,
		doctorHandler:       doctorHandler,
		reviewHandler:       reviewHandler,
		notificationHandler: notificationHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/patient/{patientId}", r.appointmentHandler.GetPatientAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/doctor/{doctorId}", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/consultation", r.appointmentHandler.UpdateConsultation).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Users (patients)
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)

	// Doctors
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)

	// Reviews
	reviews := api.PathPrefix("/reviews").Subrouter()
	reviews.HandleFunc("", r.reviewHandler.CreateReview).Methods(http.MethodPost)
	reviews.HandleFunc("/doctor/{doctorId}", r.reviewHandler.GetDoctorReviews).Methods(http.MethodGet)

	// Notifications
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.HandleFunc("", r.notificationHandler.CreateNotification).Methods(http.MethodPost)
	notifications.HandleFunc("/user/{userId}", r.notificationHandler.GetUserNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/user/{userId}/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPatch)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// CORS preflight; the CORS middleware answers before this handler runs
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]string{"status": "ok"})
}
