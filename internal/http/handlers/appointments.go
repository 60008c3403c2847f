package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/middleware"
	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/models/dto"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// AppointmentHandler books appointments for the authenticated patient.
type AppointmentHandler struct {
	store storage.AppointmentStore
}

// NewAppointmentHandler creates a booking handler backed by store.
func NewAppointmentHandler(store storage.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

// Register wires the booking route into a ServeMux behind gate.
func (h *AppointmentHandler) Register(mux *http.ServeMux, gate Middleware) {
	mux.Handle("POST /api/appointments", gate(http.HandlerFunc(h.handleBook)))
}

// handleBook takes the patient from the verified identity; the doctor id,
// date and time are stored without further checks.
func (h *AppointmentHandler) handleBook(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User invalid!")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.DoctorID == 0 || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		respond.Error(w, http.StatusBadRequest, "doctorId, date, and time are required")
		return
	}

	appt, err := h.store.CreateAppointment(r.Context(), models.Appointment{
		PatientID: user.ID,
		DoctorID:  int64(req.DoctorID),
		Date:      strings.TrimSpace(req.Date),
		Time:      strings.TrimSpace(req.Time),
		Symptoms:  req.Symptoms,
		Status:    models.StatusUpcoming,
	})
	if err != nil {
		log.Printf("book appointment for user %d: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to book appointment")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.BookAppointmentResponse{
		Success:     true,
		Message:     "Appointment booked successfully",
		Appointment: appt,
	})
}
