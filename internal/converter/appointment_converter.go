package converter

import (
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		Symptoms:        nonNilStrings(appointment.Symptoms),
		Diagnosis:       appointment.Diagnosis,
		Prescriptions:   appointment.Prescriptions,
		FollowUp:        appointment.FollowUp,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
	if response.Prescriptions == nil {
		response.Prescriptions = []entity.Prescription{}
	}

	if hasVitals(appointment.Vitals) {
		vitals := appointment.Vitals
		response.Vitals = &vitals
	}

	if appointment.Patient != nil {
		response.Patient = &dto.PatientSummary{
			ID:    appointment.Patient.ID,
			Name:  appointment.Patient.Name,
			Email: appointment.Patient.Email,
			Phone: appointment.Patient.Phone,
		}
	}

	if appointment.Doctor != nil {
		response.Doctor = &dto.DoctorSummary{
			ID:        appointment.Doctor.ID,
			Name:      appointment.Doctor.Name,
			Specialty: appointment.Doctor.Specialty,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		if resp := AppointmentToResponse(&appointments[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

func hasVitals(v entity.Vitals) bool {
	return v.BloodPressure != nil || v.Temperature != nil || v.HeartRate != nil || v.RespiratoryRate != nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
