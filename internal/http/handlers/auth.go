package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayush7932singh/HealthEase/internal/auth"
	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/middleware"
	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/models/dto"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// Middleware wraps a handler, typically with the bearer-token gate.
type Middleware func(http.Handler) http.Handler

const (
	msgInvalidCredentials = "Invalid credentials"
	msgPasswordTooLong    = "password must be at most 72 bytes"
)

var errRegistrationFields = errors.New("name, email, password, and role are required")

// AuthHandler owns register/login/verify endpoints.
type AuthHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
	dummyHash  []byte
	compare    func(hash, password []byte) error
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, bcryptCost int) *AuthHandler {
	dummy, err := bcrypt.GenerateFromPassword([]byte("healthease-unknown-user"), bcryptCost)
	if err != nil {
		log.Printf("auth: build dummy hash: %v", err)
	}
	return &AuthHandler{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
		compare:    bcrypt.CompareHashAndPassword,
	}
}

// Register attaches auth routes to the mux. Verify sits behind gate.
func (h *AuthHandler) Register(mux *http.ServeMux, gate Middleware) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.Handle("GET /api/auth/verify", gate(http.HandlerFunc(h.handleVerify)))
}

// handleRegister stores the role exactly as supplied, admin included.
func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		respond.Error(w, http.StatusBadRequest, errRegistrationFields.Error())
		return
	}

	// A taken email is reported as a conflict whatever the other fields hold.
	if _, err := h.store.FindByEmail(r.Context(), email); err == nil {
		respond.Error(w, http.StatusConflict, "Email already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("register: lookup %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if err := validateRegistration(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := hashPassword(req.Password, h.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			respond.Error(w, http.StatusBadRequest, msgPasswordTooLong)
			return
		}
		log.Printf("register: hash password: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		DOB:          strings.TrimSpace(req.DOB),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
	}
	if _, err := h.store.CreateUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, "Email already exists")
		default:
			log.Printf("create user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	respond.Message(w, http.StatusCreated, "User registered successfully")
}

// handleLogin answers unknown emails and wrong passwords identically.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("login attempt: %s", email)

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Burn one compare so unknown emails cost as much as wrong passwords.
			_ = h.compare(h.dummyHash, []byte(req.Password))
			respond.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Printf("login failed: error fetching user %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if err := h.compare([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("login: sign token for user %d: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{Success: true, Token: token, User: dto.NewUserSummary(user)})
}

func (h *AuthHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User invalid!")
		return
	}
	respond.JSON(w, http.StatusOK, dto.VerifyResponse{Success: true, User: dto.NewUserSummary(user)})
}

func validateRegistration(req dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" || req.Role == "" {
		return errRegistrationFields
	}
	if !models.ValidRole(req.Role) {
		return errors.New("role must be patient or admin")
	}
	return nil
}

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
