package usecase

import (
	"context"
	"testing"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name:       "Dr. Rachel Green",
		Email:      "rachel.green@medicare.com",
		Specialty:  "Oncologist",
		Experience: 11,
		Qualifications: []dto.QualificationRequest{
			{Degree: "MD", Institution: "Columbia University", Year: 2009},
		},
		AvailableSlots: []dto.AvailabilitySlotRequest{
			{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.AverageRating)
	assert.Equal(t, 0, created.TotalReviews)

	experience := 12
	updated, err := f.doctors.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{
		Experience: &experience,
		AvailableSlots: []dto.AvailabilitySlotRequest{
			{Day: "Tuesday", StartTime: "10:00", EndTime: "14:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Experience)
	assert.Equal(t, "Oncologist", updated.Specialty)
	require.Len(t, updated.AvailableSlots, 1)
	assert.Equal(t, "Tuesday", updated.AvailableSlots[0].Day)
	require.Len(t, updated.Qualifications, 1)

	_, err = f.doctors.UpdateDoctor(ctx, uuid.New(), &dto.UpdateDoctorRequest{Name: "Dr. Nobody"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateDoctorKeepsRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.CreateDoctor(t, f.db, "Dr. Sarah Smith", "Cardiologist")
	booked := f.book(t, bookingRequest("jane@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03", "14:30"))

	_, err := f.reviews.CreateReview(ctx, &dto.CreateReviewRequest{
		AppointmentID: booked.ID.String(),
		PatientID:     booked.PatientID.String(),
		DoctorID:      doctor.ID.String(),
		Rating:        5,
	})
	require.NoError(t, err)

	updated, err := f.doctors.UpdateDoctor(ctx, doctor.ID, &dto.UpdateDoctorRequest{Phone: "+1 (555) 999-0000"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.AverageRating)
	assert.Equal(t, 1, updated.TotalReviews)

	stored, err := f.doctorRepo.FindByID(ctx, f.db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "5.0", stored.AverageRating.StringFixed(1))
	assert.Equal(t, 1, stored.TotalReviews)
}

func TestGetAllDoctorsFiltersBySpecialty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateDoctor(t, f.db, "Dr. Sarah Smith", "Cardiologist")
	testutil.CreateDoctor(t, f.db, "Dr. Alan Park", "Cardiologist")
	testutil.CreateDoctor(t, f.db, "Dr. Emily Brown", "Pediatrician")

	all, err := f.doctors.GetAllDoctors(ctx, &entity.DoctorFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	cardio, err := f.doctors.GetAllDoctors(ctx, &entity.DoctorFilter{Specialty: "cardiologist"})
	require.NoError(t, err)
	require.Equal(t, 2, cardio.Total)
	assert.Equal(t, "Dr. Alan Park", cardio.Doctors[0].Name)
	assert.Equal(t, "Dr. Sarah Smith", cardio.Doctors[1].Name)
}

func TestGetDoctorNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.doctors.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
