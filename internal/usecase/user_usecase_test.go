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

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+1 (555) 987-6543",
		DateOfBirth: "1990-04-12",
		BloodType:   "O+",
		Allergies:   []string{"penicillin"},
		MedicalHistory: []dto.MedicalHistoryRequest{
			{Condition: "Asthma", DiagnosedDate: "2001-06-01"},
		},
		EmergencyContact: &dto.EmergencyContactRequest{Name: "John Doe", Phone: "+1 (555) 111-2222", Relationship: "Spouse"},
	}

	user, err := f.users.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "1990-04-12", user.DateOfBirth)
	assert.Equal(t, []string{"penicillin"}, user.Allergies)
	assert.Equal(t, []string{}, user.Medications)
	assert.Equal(t, "Spouse", user.EmergencyContact.Relationship)

	stored, err := f.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", stored.Email)
	require.Len(t, stored.MedicalHistory, 1)
	assert.Equal(t, "Asthma", stored.MedicalHistory[0].Condition)

	_, err = f.users.CreateUser(ctx, req)
	assert.ErrorIs(t, err, ErrUserEmailExists)
	assert.Equal(t, int64(1), testutil.CountRows(t, f.db, &entity.User{}))

	req.Email = "other@example.com"
	req.DateOfBirth = "1990-13-01"
	_, err = f.users.CreateUser(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, &dto.CreateUserRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+1 (555) 987-6543",
		DateOfBirth: "1990-04-12",
	})
	require.NoError(t, err)

	updated, err := f.users.UpdateUser(ctx, user.ID, &dto.UpdateUserRequest{
		Phone:       "+1 (555) 000-1111",
		Medications: []string{"albuterol"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "+1 (555) 000-1111", updated.Phone)
	assert.Equal(t, []string{"albuterol"}, updated.Medications)
	assert.Equal(t, "jane@example.com", updated.Email)

	_, err = f.users.UpdateUser(ctx, uuid.New(), &dto.UpdateUserRequest{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	logs, err := f.auditLogs.GetAllAuditLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, logs.Total)
	assert.Equal(t, entity.AuditActionUserUpdate, logs.Logs[0].Action)
	assert.Equal(t, entity.AuditActionUserCreate, logs.Logs[1].Action)
	assert.Contains(t, logs.Logs[0].Metadata, "old_value")

	one, err := f.auditLogs.GetAuditLog(ctx, logs.Logs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), one.EntityID)

	_, err = f.auditLogs.GetAuditLog(ctx, 9999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
