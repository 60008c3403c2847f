// Package memory is a process-local storage backend used for development
// (DATABASE_URL=memory://) and by handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every table in maps guarded by a single RWMutex.
type Store struct {
	mu           sync.RWMutex
	users        map[int64]models.User
	emails       map[string]int64
	doctors      []models.Doctor
	appointments []models.Appointment
	nextUser     int64
	nextDoctor   int64
	nextAppt     int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:  make(map[int64]models.User),
		emails: make(map[string]int64),
	}
}

// Close is a no-op.
func (s *Store) Close() {}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[user.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	s.nextUser++
	user.ID = s.nextUser
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	s.emails[user.Email] = user.ID
	return user, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users[id], nil
}

// DeleteUser removes a user. The API never deletes accounts; tests use it to
// model a token that outlives its user.
func (s *Store) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		delete(s.emails, user.Email)
		delete(s.users, id)
	}
}

func (s *Store) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}

func (s *Store) CountDoctors(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doctors), nil
}

func (s *Store) CreateDoctorIfAbsent(_ context.Context, doctor models.Doctor) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.doctors {
		if d.Name == doctor.Name {
			return false, nil
		}
	}
	s.nextDoctor++
	doctor.ID = s.nextDoctor
	s.doctors = append(s.doctors, doctor)
	return true, nil
}

func (s *Store) CreateAppointment(_ context.Context, appt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAppt++
	appt.ID = s.nextAppt
	appt.CreatedAt = time.Now().UTC()
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

func (s *Store) CountAppointments(_ context.Context, patientID int64, status string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.appointments {
		if a.PatientID == patientID && a.Status == status {
			n++
		}
	}
	return n, nil
}

// Appointments returns a copy of every stored booking.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}
