package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterDoctorRequest carries both the profile fields and the natural keys
// of the shared reference entities; the registry resolves or creates
// hospital and occupation as a side effect of registration.
type RegisterDoctorRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Surname         string `json:"surname" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Occupation      string `json:"occupation" validate:"required,max=100"`
	Experience      int    `json:"experience" validate:"gte=0"`
	ConsultationFee string `json:"consultation_fee,omitempty"`
	Hospital        string `json:"hospital" validate:"required,max=255"`
	City            string `json:"city" validate:"required,max=100"`
	Address         string `json:"address" validate:"required,max=255"`
}

type OccupationResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

type DoctorResponse struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Surname         string                `json:"surname"`
	Email           string                `json:"email"`
	Experience      int                   `json:"experience"`
	ConsultationFee decimal.Decimal       `json:"consultation_fee"`
	AccessState     string                `json:"access_state"`
	ImageURL        string                `json:"image_url,omitempty"`
	CVURL           string                `json:"cv_url,omitempty"`
	Hospital        *HospitalResponse     `json:"hospital,omitempty"`
	Occupation      *OccupationResponse   `json:"occupation,omitempty"`
	Appointments    []AppointmentResponse `json:"appointments,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

type DoctorAuthResponse struct {
	Doctor DoctorResponse `json:"doctor"`
	Token  string         `json:"token"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// ApprovalResponse mirrors the matched-count result of the access-state
// update.
type ApprovalResponse struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	AccessState string    `json:"access_state"`
	Matched     int64     `json:"matched"`
}

type ApprovalRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}
