// Package seed holds the fixed demo data written by the seed endpoints.
package seed

import "github.com/ayush7932singh/HealthEase/internal/models"

const (
	AdminName    = "Super Admin"
	AdminEmail   = "admin@healthease.com"
	AdminPhone   = "9876543210"
	AdminAddress = "Admin Office, HealthEase"
	AdminDOB     = "1990-01-01"
)

// DoctorCount is the size of the fixed directory.
const DoctorCount = 6

// Doctors returns the directory fixtures in insertion order.
func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:            "Dr. Sharma",
			Specialization:  "Cardiologist",
			Experience:      10,
			Rating:          4.5,
			ConsultationFee: 500,
			Description:     "Heart specialist.",
			Image:           "https://img.freepik.com/free-photo/doctor-with-his-arms-crossed-white-background_1368-5790.jpg",
		},
		{
			Name:            "Dr. Verma",
			Specialization:  "Dermatologist",
			Experience:      8,
			Rating:          4.8,
			ConsultationFee: 400,
			Description:     "Skin specialist.",
			Image:           "https://img.freepik.com/free-photo/woman-doctor-wearing-lab-coat-with-stethoscope-isolated_1303-29791.jpg",
		},
		{
			Name:            "Dr. Anita Roy",
			Specialization:  "Pediatrician",
			Experience:      12,
			Rating:          4.9,
			ConsultationFee: 600,
			Description:     "Child specialist.",
			Image:           "https://img.freepik.com/free-photo/portrait-smiling-medical-worker-girl-doctor-white-coat-holding-clipboard_1258-88134.jpg",
		},
		{
			Name:            "Dr. Rajesh Gupta",
			Specialization:  "Neurologist",
			Experience:      15,
			Rating:          4.7,
			ConsultationFee: 800,
			Description:     "Brain specialist.",
			Image:           "https://img.freepik.com/free-photo/portrait-successful-mid-adult-doctor-with-crossed-arms_1262-12865.jpg",
		},
		{
			Name:            "Dr. Vikram Singh",
			Specialization:  "Orthopedic",
			Experience:      14,
			Rating:          4.6,
			ConsultationFee: 700,
			Description:     "Bone specialist.",
			Image:           "https://img.freepik.com/free-photo/doctor-standing-with-folder-stethoscope_1291-16.jpg",
		},
		{
			Name:            "Dr. Meera Nair",
			Specialization:  "Psychiatrist",
			Experience:      9,
			Rating:          4.8,
			ConsultationFee: 900,
			Description:     "Mental health.",
			Image:           "https://img.freepik.com/free-photo/pleased-young-female-doctor-wearing-medical-robe-stethoscope-around-neck-standing-with-closed-posture_409827-254.jpg",
		},
	}
}

// Admin returns the fixed admin account without a password hash.
func Admin() models.User {
	return models.User{
		Name:    AdminName,
		Email:   AdminEmail,
		Role:    models.RoleAdmin,
		Phone:   AdminPhone,
		Address: AdminAddress,
		DOB:     AdminDOB,
	}
}
