package repository

import (
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.BookedAppointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookedAppointment, error)
	// FindActiveByDoctorID returns unfinished appointments with the patient
	// record preloaded for summary projection.
	FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.BookedAppointment, error)
	// MarkFinished sets finished = true on the matching row. Returns affected
	// rows: 0 means the appointment does not exist. Re-running on a finished
	// row matches it again and changes nothing, which keeps the call
	// idempotent; nothing ever writes finished back to false.
	MarkFinished(db *gorm.DB, id uuid.UUID) (int64, error)
}
