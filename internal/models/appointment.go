package models

import "time"

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

// Appointment is a booking made by a patient. DoctorID is not checked
// against the doctors table; Date and Time are stored as sent.
type Appointment struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patientId"`
	DoctorID  int64     `json:"doctorId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Symptoms  string    `json:"symptoms"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
