package usecase

import (
	"context"
	"testing"

	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AppointmentUsecaseSuite struct {
	suite.Suite
	db        *gorm.DB
	usecase   AppointmentUsecase
	approvals ApprovalUsecase
	doctorID  uuid.UUID
	patientID uuid.UUID
}

func TestAppointmentUsecaseSuite(t *testing.T) {
	suite.Run(t, new(AppointmentUsecaseSuite))
}

func (s *AppointmentUsecaseSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.usecase = NewAppointmentUsecase(s.db, newTestLogger(), repository.NewAppointmentRepository(), repository.NewDoctorRepository())
	s.approvals = NewApprovalUsecase(s.db, newTestLogger(), repository.NewDoctorRepository())

	doctors := NewDoctorUsecase(
		s.db,
		newTestLogger(),
		repository.NewDoctorRepository(),
		repository.NewHospitalRepository(),
		repository.NewOccupationRepository(),
		newTestJWTService(),
		newTestSessionStore(),
		newTestAttachmentStore(s.T()),
	)
	registered, err := doctors.Register(context.Background(), registerRequest("doctor@example.com"))
	s.Require().NoError(err)
	s.doctorID = registered.Doctor.ID

	auth := NewAuthUsecase(s.db, newTestLogger(), repository.NewAdminRepository(), repository.NewPatientRepository(), newTestJWTService(), newTestSessionStore())
	patient, err := auth.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "John",
		Surname:     "Doe",
		Email:       "john@example.com",
		Password:    "password123",
		DateOfBirth: "1990-04-12",
		Gender:      "M",
	})
	s.Require().NoError(err)
	s.patientID = patient.Patient.ID
}

func (s *AppointmentUsecaseSuite) approveDoctor() {
	_, err := s.approvals.Approve(context.Background(), s.doctorID)
	s.Require().NoError(err)
}

func (s *AppointmentUsecaseSuite) bookingRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{DoctorID: s.doctorID.String()}
}

func (s *AppointmentUsecaseSuite) TestBookingRequiresApprovedDoctor() {
	_, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.ErrorIs(err, ErrDoctorNotApproved)

	s.approveDoctor()

	result, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)
	s.Equal(s.doctorID, result.DoctorID)
	s.Equal(s.patientID, result.PatientID)
	s.False(result.Finished)
}

func (s *AppointmentUsecaseSuite) TestBookingRejectsDeniedDoctor() {
	_, err := s.approvals.Deny(context.Background(), s.doctorID)
	s.Require().NoError(err)

	_, err = s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.ErrorIs(err, ErrDoctorNotApproved)
}

func (s *AppointmentUsecaseSuite) TestBookingUnknownDoctor() {
	_, err := s.usecase.CreateBooking(context.Background(), s.patientID, &dto.CreateBookingRequest{DoctorID: uuid.NewString()})
	s.ErrorIs(err, ErrDoctorNotFound)

	_, err = s.usecase.CreateBooking(context.Background(), s.patientID, &dto.CreateBookingRequest{DoctorID: "not-a-uuid"})
	s.ErrorIs(err, ErrDoctorNotFound)
}

func (s *AppointmentUsecaseSuite) TestSecondActiveBookingRejected() {
	s.approveDoctor()

	_, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)

	_, err = s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.ErrorIs(err, ErrAlreadyBooked)
}

func (s *AppointmentUsecaseSuite) TestRebookingAllowedAfterFinish() {
	s.approveDoctor()

	first, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)

	s.Require().NoError(s.usecase.MarkFinished(context.Background(), first.ID))

	second, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)
}

func (s *AppointmentUsecaseSuite) TestMarkFinishedIsIdempotent() {
	s.approveDoctor()

	booked, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)

	s.Require().NoError(s.usecase.MarkFinished(context.Background(), booked.ID))
	s.Require().NoError(s.usecase.MarkFinished(context.Background(), booked.ID))

	appointment, err := repository.NewAppointmentRepository().FindByID(s.db, booked.ID)
	s.Require().NoError(err)
	s.Require().NotNil(appointment)
	s.True(appointment.Finished)
}

func (s *AppointmentUsecaseSuite) TestMarkFinishedUnknownAppointment() {
	err := s.usecase.MarkFinished(context.Background(), uuid.New())
	s.ErrorIs(err, ErrAppointmentNotFound)
}

func (s *AppointmentUsecaseSuite) TestListActiveForDoctor() {
	s.approveDoctor()

	booked, err := s.usecase.CreateBooking(context.Background(), s.patientID, s.bookingRequest())
	s.Require().NoError(err)

	result, err := s.usecase.ListActiveForDoctor(context.Background(), s.doctorID)
	s.Require().NoError(err)
	s.Equal(1, result.Total)
	s.Require().Len(result.Appointments, 1)
	s.Equal(booked.ID, result.Appointments[0].ID)

	// The attached patient projection carries display fields only
	patient := result.Appointments[0].Patient
	s.Require().NotNil(patient)
	s.Equal("John", patient.Name)
	s.Equal("Doe", patient.Surname)

	s.Require().NoError(s.usecase.MarkFinished(context.Background(), booked.ID))

	result, err = s.usecase.ListActiveForDoctor(context.Background(), s.doctorID)
	s.Require().NoError(err)
	s.Equal(0, result.Total)
}
