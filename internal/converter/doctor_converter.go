package converter

import (
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse maps a doctor to its response shape. The password hash is
// stripped here by construction: the DTO has no field for it.
func DoctorToResponse(doctor *entity.Doctor) dto.DoctorResponse {
	resp := dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Surname:         doctor.Surname,
		Email:           doctor.Email,
		Experience:      doctor.Experience,
		ConsultationFee: doctor.ConsultationFee,
		AccessState:     string(doctor.AccessState),
		ImageURL:        doctor.ImageURL,
		CVURL:           doctor.CVURL,
		Hospital:        HospitalToResponse(&doctor.Hospital),
		CreatedAt:       doctor.CreatedAt,
	}
	if doctor.Occupation.ID != uuid.Nil {
		resp.Occupation = &dto.OccupationResponse{
			ID:    doctor.Occupation.ID,
			Label: doctor.Occupation.Label,
		}
	}
	if len(doctor.Appointments) > 0 {
		resp.Appointments = AppointmentsToResponses(doctor.Appointments)
	}
	return resp
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, DoctorToResponse(&doctors[i]))
	}
	return responses
}
