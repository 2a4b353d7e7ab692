package usecase

import (
	"context"
	"testing"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/service"
	"medicare-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsMaintainDoctorRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.CreateDoctor(t, f.db, "Dr. Sarah Smith", "Cardiologist")

	tests := []struct {
		rating      int
		wantAverage string
		wantTotal   int
	}{
		{4, "4.0", 1},
		{5, "4.5", 2},
		{3, "4.0", 3},
	}

	for i, tt := range tests {
		booked := f.book(t, bookingRequest("patient@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03", "14:30"))

		resp, err := f.reviews.CreateReview(ctx, &dto.CreateReviewRequest{
			AppointmentID: booked.ID.String(),
			PatientID:     booked.PatientID.String(),
			DoctorID:      doctor.ID.String(),
			Rating:        tt.rating,
			Comment:       "Very attentive",
		})
		require.NoError(t, err, "review %d", i+1)
		assert.Equal(t, tt.wantTotal, resp.DoctorRating.TotalReviews)

		stored, err := f.doctorRepo.FindByID(ctx, f.db, doctor.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.wantAverage, stored.AverageRating.StringFixed(1), "review %d", i+1)
		assert.Equal(t, tt.wantTotal, stored.TotalReviews, "review %d", i+1)
	}

	detail, err := f.doctors.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, detail.AverageRating)
	assert.Equal(t, 3, detail.TotalReviews)
	require.Len(t, detail.Reviews, 3)
	assert.Equal(t, "Jane Doe", detail.Reviews[0].PatientName)

	types := f.publisher.types()
	assert.Contains(t, types, service.EventReviewCreated)
}

func TestCreateReviewValidatesReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.CreateDoctor(t, f.db, "Dr. Sarah Smith", "Cardiologist")
	other := testutil.CreateDoctor(t, f.db, "Dr. John Doe", "General Physician")
	booked := f.book(t, bookingRequest("jane@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03", "14:30"))

	tests := []struct {
		name    string
		req     dto.CreateReviewRequest
		wantErr error
	}{
		{
			name:    "unknown doctor",
			req:     dto.CreateReviewRequest{AppointmentID: booked.ID.String(), PatientID: booked.PatientID.String(), DoctorID: uuid.NewString(), Rating: 5},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "unknown appointment",
			req:     dto.CreateReviewRequest{AppointmentID: uuid.NewString(), PatientID: booked.PatientID.String(), DoctorID: doctor.ID.String(), Rating: 5},
			wantErr: ErrAppointmentNotFound,
		},
		{
			name:    "appointment with another doctor",
			req:     dto.CreateReviewRequest{AppointmentID: booked.ID.String(), PatientID: booked.PatientID.String(), DoctorID: other.ID.String(), Rating: 5},
			wantErr: ErrReviewAppointmentMismatch,
		},
		{
			name:    "appointment of another patient",
			req:     dto.CreateReviewRequest{AppointmentID: booked.ID.String(), PatientID: uuid.NewString(), DoctorID: doctor.ID.String(), Rating: 5},
			wantErr: ErrReviewAppointmentMismatch,
		},
		{
			name:    "malformed id",
			req:     dto.CreateReviewRequest{AppointmentID: "nope", PatientID: booked.PatientID.String(), DoctorID: doctor.ID.String(), Rating: 5},
			wantErr: ErrInvalidReviewReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.reviews.CreateReview(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &entity.Review{}))

	stored, err := f.doctorRepo.FindByID(ctx, f.db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.0", stored.AverageRating.StringFixed(1))
	assert.Equal(t, 0, stored.TotalReviews)
}

func TestGetDoctorReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.CreateDoctor(t, f.db, "Dr. Sarah Smith", "Cardiologist")

	list, err := f.reviews.GetDoctorReviews(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)

	_, err = f.reviews.GetDoctorReviews(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
