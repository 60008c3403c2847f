package handlers

import (
	"log"
	"net/http"

	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/middleware"
	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/models/dto"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// Placeholder counters; there is no prescription or lab-report data.
const (
	stubPrescriptions = 2
	stubLabReports    = 1
)

// DashboardHandler reports per-patient counters.
type DashboardHandler struct {
	store storage.AppointmentStore
}

// NewDashboardHandler creates a stats handler backed by store.
func NewDashboardHandler(store storage.AppointmentStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Register wires the stats route into a ServeMux behind gate.
func (h *DashboardHandler) Register(mux *http.ServeMux, gate Middleware) {
	mux.Handle("GET /api/dashboard/stats", gate(http.HandlerFunc(h.handleStats)))
}

func (h *DashboardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User invalid!")
		return
	}

	upcoming, err := h.store.CountAppointments(r.Context(), user.ID, models.StatusUpcoming)
	if err != nil {
		log.Printf("dashboard stats for user %d: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	respond.JSON(w, http.StatusOK, dto.DashboardStats{
		Success:              true,
		UpcomingAppointments: upcoming,
		Prescriptions:        stubPrescriptions,
		LabReports:           stubLabReports,
	})
}
