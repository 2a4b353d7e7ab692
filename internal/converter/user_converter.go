package converter

import (
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		DateOfBirth:      user.DateOfBirth.Format(dateLayout),
		BloodType:        user.BloodType,
		Allergies:        nonNilStrings(user.Allergies),
		Medications:      nonNilStrings(user.Medications),
		MedicalHistory:   user.MedicalHistory,
		EmergencyContact: user.EmergencyContact,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
	if response.MedicalHistory == nil {
		response.MedicalHistory = []entity.MedicalHistoryEntry{}
	}

	return response
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		if resp := UserToResponse(&users[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
