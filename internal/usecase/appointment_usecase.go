package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medicare-api/internal/converter"
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"
	"medicare-api/internal/service"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	appointmentDateLayout = "2006-01-02"
	appointmentTimeLayout = "15:04"

	// doctorDesignatorSeparator splits "<Doctor Name> - <Specialty>".
	doctorDesignatorSeparator = " - "
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentDate   = errors.New("invalid appointment date or time")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrInvalidFollowUpDate      = errors.New("invalid follow-up date")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateConsultation(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	userRepo            repository.UserRepository
	doctorRepo          repository.DoctorRepository
	auditService        service.AuditService
	notificationService service.NotificationService
	eventService        service.EventService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	notificationService service.NotificationService,
	eventService service.EventService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		userRepo:            userRepo,
		doctorRepo:          doctorRepo,
		auditService:        auditService,
		notificationService: notificationService,
		eventService:        eventService,
	}
}

// CreateAppointment runs the booking transaction.
//
// Flow (single transaction):
// 1. Find the patient by email, or create one with a placeholder date of birth
// 2. Resolve the doctor by ID or by the name part of the designator
// 3. Unknown doctor -> rollback, so the patient from step 1 is not kept
// 4. Insert the appointment as pending
// 5. Audit, commit, reload with patient and doctor
//
// Notification and event publishing happen after commit and never fail the booking.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.ParseInLocation(appointmentDateLayout+" "+appointmentTimeLayout, req.Date+" "+req.Time, time.Local)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Step 1: find or create the patient
	patient, err := u.userRepo.FindByEmail(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		patient = &entity.User{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			DateOfBirth: now.BeginningOfDay(),
		}
		if err := u.userRepo.Create(ctx, tx, patient); err != nil {
			u.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}
	}

	// Step 2: resolve the doctor
	doctor, err := u.resolveDoctor(ctx, tx, req)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	// Step 3: unknown doctor aborts the whole transaction
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Step 4: insert appointment
	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.Time,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusPending,
		Symptoms:        datatypes.JSONSlice[string]{},
		Prescriptions:   datatypes.JSONSlice[entity.Prescription]{},
		Notes: entity.AppointmentNotes{
			PatientNotes: req.Reason,
		},
	}
	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Step 5: audit + commit
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = patient
	appointment.Doctor = doctor
	resp := u.reload(ctx, appointment)

	u.log.Infof("Appointment booked: id=%s, patient=%s, doctor=%s, date=%s", appointment.ID, patient.ID, doctor.ID, appointmentDate.Format(time.RFC3339))

	u.notificationService.Notify(ctx, patient.ID, entity.NotificationTypeAppointment, "Appointment requested",
		fmt.Sprintf("Your appointment with %s on %s at %s is pending confirmation.", doctor.Name, req.Date, req.Time))
	u.eventService.Publish(ctx, service.EventAppointmentCreated, appointment.ID.String(), resp)

	return resp, nil
}

// resolveDoctor prefers the stable ID and falls back to the designator label.
func (u *appointmentUsecase) resolveDoctor(ctx context.Context, tx *gorm.DB, req *dto.CreateAppointmentRequest) (*entity.Doctor, error) {
	if req.DoctorID != "" {
		doctorID, err := uuid.Parse(req.DoctorID)
		if err != nil {
			return nil, nil
		}
		return u.doctorRepo.FindByID(ctx, tx, doctorID)
	}

	name := DoctorNameFromDesignator(req.Doctor)
	if name == "" {
		return nil, nil
	}
	return u.doctorRepo.FindByName(ctx, tx, name)
}

// DoctorNameFromDesignator returns the name segment of "<Doctor Name> - <Specialty>"
// exactly as written; surrounding whitespace is kept so the lookup stays exact.
func DoctorNameFromDesignator(designator string) string {
	name, _, _ := strings.Cut(designator, doctorDesignatorSeparator)
	return name
}

// reload fetches the committed appointment with its relations, falling back
// to what is already in memory.
func (u *appointmentUsecase) reload(ctx context.Context, appointment *entity.Appointment) *dto.AppointmentResponse {
	full, err := u.appointmentRepo.FindByID(ctx, u.db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment)
	}
	return converter.AppointmentToResponse(full)
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus sets any of the four statuses; there are no transition rules.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidAppointmentStatus
	}

	resp, err := u.changeStatus(ctx, id, status, req.DoctorNotes, entity.AuditActionAppointmentStatus)
	if err != nil {
		return nil, err
	}

	u.notificationService.Notify(ctx, resp.PatientID, entity.NotificationTypeAppointment, "Appointment status updated",
		fmt.Sprintf("Your appointment on %s at %s is now %s.", resp.AppointmentDate.Format(appointmentDateLayout), resp.AppointmentTime, resp.Status))
	u.eventService.Publish(ctx, service.EventAppointmentStatusUpdated, id.String(), resp)

	return resp, nil
}

// CancelAppointment marks the appointment cancelled. Cancelling twice is not an error.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	resp, err := u.changeStatus(ctx, id, entity.AppointmentStatusCancelled, "", entity.AuditActionAppointmentCancel)
	if err != nil {
		return nil, err
	}

	u.notificationService.Notify(ctx, resp.PatientID, entity.NotificationTypeAppointment, "Appointment cancelled",
		fmt.Sprintf("Your appointment on %s at %s has been cancelled.", resp.AppointmentDate.Format(appointmentDateLayout), resp.AppointmentTime))
	u.eventService.Publish(ctx, service.EventAppointmentCancelled, id.String(), resp)

	return resp, nil
}

func (u *appointmentUsecase) changeStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, doctorNotes string, action string) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, id, status, doctorNotes)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = status
	if doctorNotes != "" {
		appointment.Notes.DoctorNotes = doctorNotes
	}

	if err := u.auditService.LogUpdate(ctx, tx, action, "appointment", id.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment status updated: id=%s, status=%s", id, status)
	return u.reload(ctx, appointment), nil
}

// UpdateConsultation records the clinical outcome of a visit. Only the
// sections present in the request are replaced.
func (u *appointmentUsecase) UpdateConsultation(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Symptoms != nil {
		appointment.Symptoms = req.Symptoms
	}
	if req.Diagnosis != nil {
		appointment.Diagnosis = req.Diagnosis
	}
	if req.Prescriptions != nil {
		prescriptions := make(datatypes.JSONSlice[entity.Prescription], len(req.Prescriptions))
		for i, p := range req.Prescriptions {
			prescriptions[i] = entity.Prescription{
				Medicine: p.Medicine,
				Dosage:   p.Dosage,
				Duration: p.Duration,
				Notes:    p.Notes,
			}
		}
		appointment.Prescriptions = prescriptions
	}
	if req.FollowUp != nil {
		followUp := entity.FollowUp{Required: req.FollowUp.Required}
		if req.FollowUp.Date != "" {
			date, err := time.ParseInLocation(appointmentDateLayout, req.FollowUp.Date, time.Local)
			if err != nil {
				return nil, ErrInvalidFollowUpDate
			}
			followUp.Date = &date
		}
		appointment.FollowUp = followUp
	}
	if req.Vitals != nil {
		if req.Vitals.BloodPressure != nil {
			appointment.Vitals.BloodPressure = req.Vitals.BloodPressure
		}
		if req.Vitals.Temperature != nil {
			appointment.Vitals.Temperature = req.Vitals.Temperature
		}
		if req.Vitals.HeartRate != nil {
			appointment.Vitals.HeartRate = req.Vitals.HeartRate
		}
		if req.Vitals.RespiratoryRate != nil {
			appointment.Vitals.RespiratoryRate = req.Vitals.RespiratoryRate
		}
	}

	if err := u.appointmentRepo.UpdateConsultation(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update consultation for appointment %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentConsultation, "appointment", id.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, appointment), nil
}
