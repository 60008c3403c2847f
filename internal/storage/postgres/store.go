package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users, doctors and appointments.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to Postgres and makes sure the tables exist.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			dob TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE TABLE IF NOT EXISTS doctors (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			specialization TEXT NOT NULL DEFAULT '',
			experience INTEGER NOT NULL DEFAULT 0,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			consultation_fee INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS doctors_name_unique_idx ON doctors (name);`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id BIGSERIAL PRIMARY KEY,
			patient_id BIGINT NOT NULL,
			doctor_id BIGINT NOT NULL,
			appt_date TEXT NOT NULL,
			appt_time TEXT NOT NULL,
			symptoms TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS appointments_patient_status_idx ON appointments (patient_id, status);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const userColumns = `id, name, email, password_hash, role, dob, phone, address, created_at`

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, role, dob, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role, user.DOB, user.Phone, user.Address)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.DOB, &user.Phone, &user.Address, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ListDoctors returns the whole directory ordered by id.
func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	const query = `
	SELECT id, name, specialization, experience, rating, consultation_fee, image, description
	FROM doctors
	ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Experience, &d.Rating, &d.ConsultationFee, &d.Image, &d.Description); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// CountDoctors returns the number of directory rows.
func (s *Store) CountDoctors(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	return n, nil
}

// CreateDoctorIfAbsent inserts the doctor unless the name is taken.
func (s *Store) CreateDoctorIfAbsent(ctx context.Context, d models.Doctor) (bool, error) {
	const query = `
	INSERT INTO doctors (name, specialization, experience, rating, consultation_fee, image, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (name) DO NOTHING;
	`
	tag, err := s.pool.Exec(ctx, query, d.Name, d.Specialization, d.Experience, d.Rating, d.ConsultationFee, d.Image, d.Description)
	if err != nil {
		return false, fmt.Errorf("insert doctor: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreateAppointment inserts a booking and returns the stored row.
func (s *Store) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	const query = `
	INSERT INTO appointments (patient_id, doctor_id, appt_date, appt_time, symptoms, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at;
	`
	if err := s.pool.QueryRow(ctx, query, a.PatientID, a.DoctorID, a.Date, a.Time, a.Symptoms, a.Status).Scan(&a.ID, &a.CreatedAt); err != nil {
		return models.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

// CountAppointments counts a patient's appointments in the given status.
func (s *Store) CountAppointments(ctx context.Context, patientID int64, status string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE patient_id = $1 AND status = $2`, patientID, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}
