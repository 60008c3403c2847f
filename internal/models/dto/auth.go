package dto

import "github.com/ayush7932singh/HealthEase/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the public projection of a user returned to clients.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserSummary(u models.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type VerifyResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}
