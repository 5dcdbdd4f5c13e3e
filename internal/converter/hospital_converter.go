package converter

import (
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
)

func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil || hospital.ID == uuid.Nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:           hospital.ID,
		Name:         hospital.Name,
		City:         hospital.City,
		Address:      hospital.Address,
		Phone:        hospital.Phone,
		VisitingTime: hospital.VisitingTime,
		ImageURL:     hospital.ImageURL,
	}
}

func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, 0, len(hospitals))
	for i := range hospitals {
		responses = append(responses, *HospitalToResponse(&hospitals[i]))
	}
	return responses
}
