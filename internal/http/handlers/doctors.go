package handlers

import (
	"log"
	"net/http"

	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/models/dto"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// DoctorHandler serves the public doctor directory.
type DoctorHandler struct {
	store storage.DoctorStore
}

// NewDoctorHandler creates a directory handler backed by store.
func NewDoctorHandler(store storage.DoctorStore) *DoctorHandler {
	return &DoctorHandler{store: store}
}

// Register wires the handler into a ServeMux.
func (h *DoctorHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/doctors", h.handleList)
}

func (h *DoctorHandler) handleList(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.ListDoctors(r.Context())
	if err != nil {
		log.Printf("list doctors: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to load doctors")
		return
	}
	respond.JSON(w, http.StatusOK, dto.DoctorListResponse{Success: true, Doctors: doctors})
}
