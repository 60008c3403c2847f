package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := New()

	first, err := s.CreateUser(ctx, models.User{Name: "A", Email: "a@example.com", Role: models.RolePatient})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	_, err = s.CreateUser(ctx, models.User{Name: "B", Email: "a@example.com", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	found, err := s.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", found.Name)
}

func TestFindMissingUser(t *testing.T) {
	s := New()
	_, err := s.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUserFreesEmail(t *testing.T) {
	ctx := context.Background()
	s := New()
	u, err := s.CreateUser(ctx, models.User{Email: "gone@example.com"})
	require.NoError(t, err)

	s.DeleteUser(u.ID)

	_, err = s.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.CreateUser(ctx, models.User{Email: "gone@example.com"})
	assert.NoError(t, err)
}

func TestCreateDoctorIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := New()

	added, err := s.CreateDoctorIfAbsent(ctx, models.Doctor{Name: "Dr. Sharma"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.CreateDoctorIfAbsent(ctx, models.Doctor{Name: "Dr. Sharma", Rating: 1})
	require.NoError(t, err)
	assert.False(t, added)

	n, err := s.CountDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountAppointmentsFiltersByPatientAndStatus(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, a := range []models.Appointment{
		{PatientID: 1, DoctorID: 1, Status: models.StatusUpcoming},
		{PatientID: 1, DoctorID: 2, Status: models.StatusUpcoming},
		{PatientID: 1, DoctorID: 2, Status: models.StatusCompleted},
		{PatientID: 2, DoctorID: 1, Status: models.StatusUpcoming},
	} {
		_, err := s.CreateAppointment(ctx, a)
		require.NoError(t, err)
	}

	n, err := s.CountAppointments(ctx, 1, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountAppointments(ctx, 3, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Zero(t, n)
}
