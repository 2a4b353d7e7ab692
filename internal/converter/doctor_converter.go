package converter

import (
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	qualifications := make([]dto.QualificationResponse, len(doctor.Qualifications))
	for i, q := range doctor.Qualifications {
		qualifications[i] = dto.QualificationResponse{
			Degree:      q.Degree,
			Institution: q.Institution,
			Year:        q.Year,
		}
	}

	slots := make([]dto.AvailabilitySlotResponse, len(doctor.AvailableSlots))
	for i, s := range doctor.AvailableSlots {
		slots[i] = dto.AvailabilitySlotResponse{
			Day:       s.Day,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialty:      doctor.Specialty,
		Experience:     doctor.Experience,
		Qualifications: qualifications,
		AvailableSlots: slots,
		AverageRating:  doctor.AverageRating.InexactFloat64(),
		TotalReviews:   doctor.TotalReviews,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		if resp := DoctorToResponse(&doctors[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DoctorToDetailResponse combines a doctor with its reviews
func DoctorToDetailResponse(doctor *entity.Doctor, reviews []entity.Review) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorDetailResponse{
		DoctorResponse: *DoctorToResponse(doctor),
		Reviews:        ReviewsToResponses(reviews),
	}
}
