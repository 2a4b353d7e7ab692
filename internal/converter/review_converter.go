package converter

import (
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	response := &dto.ReviewResponse{
		ID:            review.ID,
		AppointmentID: review.AppointmentID,
		PatientID:     review.PatientID,
		DoctorID:      review.DoctorID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}

	if review.Patient != nil {
		response.PatientName = review.Patient.Name
	}

	return response
}

// ReviewsToResponses converts a slice of Review entities to slice of ReviewResponse DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		if resp := ReviewToResponse(&reviews[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
