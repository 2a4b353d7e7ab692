package database_test

import (
	"context"
	"testing"

	"medicare-api/internal/domain/entity"
	"medicare-api/internal/infrastructure/database"
	"medicare-api/internal/repository"
	"medicare-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDoctorsOnlyWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	doctorRepo := repository.NewDoctorRepository()
	ctx := context.Background()

	inserted, err := database.SeedDoctors(ctx, db, doctorRepo)
	require.NoError(t, err)
	assert.Equal(t, len(database.DoctorRoster()), inserted)

	again, err := database.SeedDoctors(ctx, db, doctorRepo)
	require.NoError(t, err)
	assert.Equal(t, 0, again)
	assert.Equal(t, int64(inserted), testutil.CountRows(t, db, &entity.Doctor{}))

	sarah, err := doctorRepo.FindByName(ctx, db, "Dr. Sarah Smith")
	require.NoError(t, err)
	require.NotNil(t, sarah)
	assert.Equal(t, "Cardiologist", sarah.Specialty)
	assert.Equal(t, "0.0", sarah.AverageRating.StringFixed(1))
	assert.Equal(t, 0, sarah.TotalReviews)
	assert.Len(t, sarah.AvailableSlots, 2)
}

func TestSeedDoctorsSkipsPopulatedTable(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateDoctor(t, db, "Dr. Existing", "Cardiologist")

	inserted, err := database.SeedDoctors(context.Background(), db, repository.NewDoctorRepository())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &entity.Doctor{}))
}

func TestDoctorRosterNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range database.DoctorRoster() {
		assert.False(t, seen[d.Name], "duplicate roster name %s", d.Name)
		seen[d.Name] = true
		assert.True(t, d.AverageRating.IsZero())
	}
}
