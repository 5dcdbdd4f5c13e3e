package converter

import (
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
)

func PatientToResponse(patient *entity.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		ID:          patient.ID,
		Name:        patient.Name,
		Surname:     patient.Surname,
		Email:       patient.Email,
		DateOfBirth: patient.DateOfBirth,
		Gender:      patient.Gender,
		AvatarURL:   patient.AvatarURL,
		CreatedAt:   patient.CreatedAt,
	}
}

// PatientToSummary projects only the display fields a doctor sees on an
// appointment.
func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil || patient.ID == uuid.Nil {
		return nil
	}
	return &dto.PatientSummary{
		Name:        patient.Name,
		Surname:     patient.Surname,
		DateOfBirth: patient.DateOfBirth,
		Gender:      patient.Gender,
	}
}
