package usecase

import (
	"context"
	"errors"

	"clinic-directory/internal/converter"
	"clinic-directory/internal/delivery/dto"
	"clinic-directory/internal/domain/entity"
	"clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotApproved   = errors.New("doctor is not accepting bookings")
	ErrAlreadyBooked       = errors.New("you already have an active appointment with this doctor")
)

// AppointmentUsecase is the booking ledger. Records move from unfinished to
// finished exactly once; only approved doctors can be booked.
type AppointmentUsecase interface {
	CreateBooking(ctx context.Context, patientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.AppointmentResponse, error)
	ListActiveForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	MarkFinished(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
	}
}

// CreateBooking books an approved doctor for a patient. The partial unique
// index on (doctor_id, patient_id) where finished = false rejects a second
// active booking for the same pair, so the duplicate check needs no lock.
func (u *appointmentUsecase) CreateBooking(ctx context.Context, patientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.AppointmentResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.AccessState.IsApproved() {
		return nil, ErrDoctorNotApproved
	}

	appointment := &entity.BookedAppointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Finished:  false,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isDuplicateKeyError(err, "idx_active_booking") {
			return nil, ErrAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s doctor=%s patient=%s", appointment.ID, doctorID, patientID)

	resp := converter.AppointmentToResponse(appointment)
	return &resp, nil
}

// ListActiveForDoctor returns the doctor's unfinished appointments with the
// patient summary projection attached.
func (u *appointmentUsecase) ListActiveForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindActiveByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// MarkFinished completes an appointment. Repeating the call on a finished
// record succeeds without changing anything; the flag never reverts.
func (u *appointmentUsecase) MarkFinished(ctx context.Context, appointmentID uuid.UUID) error {
	matched, err := u.appointmentRepo.MarkFinished(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to finish appointment %s: %+v", appointmentID, err)
		return err
	}
	if matched == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment finished: id=%s", appointmentID)
	return nil
}
