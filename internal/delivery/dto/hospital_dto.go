package dto

import "github.com/google/uuid"

type UpdateHospitalRequest struct {
	Address      string `json:"address,omitempty" validate:"omitempty,max=255"`
	VisitingTime string `json:"visiting_time,omitempty" validate:"omitempty,max=100"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type HospitalResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone,omitempty"`
	VisitingTime string    `json:"visiting_time,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
