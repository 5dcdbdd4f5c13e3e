package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}

// PatientSummary is the projection attached to a doctor's appointment list:
// display fields only, nothing that could identify the patient's account
// beyond what the doctor needs.
type PatientSummary struct {
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
}

type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	PatientID uuid.UUID       `json:"patient_id"`
	Finished  bool            `json:"finished"`
	Patient   *PatientSummary `json:"patient,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
