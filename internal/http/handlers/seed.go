package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/seed"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// SeedHandler writes the fixed demo directory and admin account. Both
// endpoints are idempotent.
type SeedHandler struct {
	users         storage.UserStore
	doctors       storage.DoctorStore
	adminPassword string
	bcryptCost    int
}

// NewSeedHandler creates the seed endpoints; adminPassword is the plaintext
// password given to the seeded admin account.
func NewSeedHandler(users storage.UserStore, doctors storage.DoctorStore, adminPassword string, bcryptCost int) *SeedHandler {
	return &SeedHandler{users: users, doctors: doctors, adminPassword: adminPassword, bcryptCost: bcryptCost}
}

// Register wires /api/seed_doctors and /api/seed_admin into a ServeMux.
func (h *SeedHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/seed_doctors", h.handleSeedDoctors)
	mux.HandleFunc("GET /api/seed_admin", h.handleSeedAdmin)
}

func (h *SeedHandler) handleSeedDoctors(w http.ResponseWriter, r *http.Request) {
	count, err := h.doctors.CountDoctors(r.Context())
	if err != nil {
		log.Printf("seed doctors: count: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to seed doctors")
		return
	}
	if count >= seed.DoctorCount {
		respond.Message(w, http.StatusOK, fmt.Sprintf("All %d Doctors already exist in database", seed.DoctorCount))
		return
	}

	added := 0
	for _, doctor := range seed.Doctors() {
		inserted, err := h.doctors.CreateDoctorIfAbsent(r.Context(), doctor)
		if err != nil {
			log.Printf("seed doctors: insert %s: %v", doctor.Name, err)
			respond.Error(w, http.StatusInternalServerError, "failed to seed doctors")
			return
		}
		if inserted {
			added++
		}
	}
	respond.Message(w, http.StatusOK, fmt.Sprintf("%d new doctors added! Total %d available.", added, seed.DoctorCount))
}

func (h *SeedHandler) handleSeedAdmin(w http.ResponseWriter, r *http.Request) {
	const exists = "Admin user already exists!"

	if _, err := h.users.FindByEmail(r.Context(), seed.AdminEmail); err == nil {
		respond.Message(w, http.StatusOK, exists)
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("seed admin: lookup: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to seed admin")
		return
	}

	hash, err := hashPassword(h.adminPassword, h.bcryptCost)
	if err != nil {
		log.Printf("seed admin: hash password: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	admin := seed.Admin()
	admin.PasswordHash = hash
	if _, err := h.users.CreateUser(r.Context(), admin); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Message(w, http.StatusOK, exists)
			return
		}
		log.Printf("seed admin: create: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to seed admin")
		return
	}
	respond.Message(w, http.StatusOK, fmt.Sprintf("Admin created! Email: %s, Password: %s", seed.AdminEmail, h.adminPassword))
}
