package converter

import (
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.BookedAppointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Finished:  appointment.Finished,
		Patient:   PatientToSummary(&appointment.Patient),
		CreatedAt: appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.BookedAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return responses
}
