package storage

import (
	"context"
	"errors"

	"github.com/ayush7932singh/HealthEase/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations on user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// DoctorStore serves the read-only doctor directory and its seeding.
type DoctorStore interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	CountDoctors(ctx context.Context) (int, error)
	// CreateDoctorIfAbsent inserts doctor unless a row with the same name
	// exists, reporting whether a row was written.
	CreateDoctorIfAbsent(ctx context.Context, doctor models.Doctor) (bool, error)
}

// AppointmentStore persists bookings.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	CountAppointments(ctx context.Context, patientID int64, status string) (int, error)
}

// Store is the full persistence surface a backend must provide.
type Store interface {
	UserStore
	DoctorStore
	AppointmentStore
	Close()
}
