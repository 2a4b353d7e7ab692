package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	DoctorID string `json:"doctor_id" validate:"omitempty,uuid"`
	Doctor   string `json:"doctor" validate:"required_without=DoctorID"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status" validate:"omitempty,oneof=pending cancelled"`
	Contact  *struct {
		Phone string `json:"phone" validate:"required"`
	} `json:"contact" validate:"omitempty"`
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	form := bookingForm{
		Email:  "not-an-email",
		Date:   "15/10/2026",
		Status: "done",
		Contact: &struct {
			Phone string `json:"phone" validate:"required"`
		}{},
	}
	err := v.Validate(&form)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "doctor is required when doctor_id is not provided", errs["doctor"])
	assert.Equal(t, "date must match the format 2006-01-02", errs["date"])
	assert.Equal(t, "status must be one of: pending, cancelled", errs["status"])
	assert.Equal(t, "phone is required", errs["contact.phone"])
}

func TestValidateAcceptsDoctorIDInsteadOfDesignator(t *testing.T) {
	v := NewValidator()

	form := bookingForm{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		DoctorID: "4f7c0f3e-1b55-4a8e-9a65-0c4b8f7f2d11",
		Date:     "2026-10-15",
	}
	assert.NoError(t, v.Validate(&form))
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "doctor_id", jsonName("DoctorID"))
	assert.Equal(t, "appointment_date", jsonName("AppointmentDate"))
	assert.Equal(t, "name", jsonName("Name"))
}
