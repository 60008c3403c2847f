package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ayush7932singh/HealthEase/internal/models"
)

// NumericID decodes an id sent either as a JSON number or as a numeric
// string, which is what HTML <select> values arrive as.
type NumericID int64

func (n *NumericID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric id %s", b)
	}
	*n = NumericID(v)
	return nil
}

// BookAppointmentRequest carries no patient id; the patient is always the
// authenticated caller.
type BookAppointmentRequest struct {
	DoctorID NumericID `json:"doctorId"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Symptoms string    `json:"symptoms"`
}

type BookAppointmentResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Appointment models.Appointment `json:"appointment"`
}

type DoctorListResponse struct {
	Success bool            `json:"success"`
	Doctors []models.Doctor `json:"doctors"`
}

// DashboardStats reports the caller's upcoming appointments. Prescriptions
// and LabReports are fixed placeholder values.
type DashboardStats struct {
	Success              bool `json:"success"`
	UpcomingAppointments int  `json:"upcomingAppointments"`
	Prescriptions        int  `json:"prescriptions"`
	LabReports           int  `json:"labReports"`
}
