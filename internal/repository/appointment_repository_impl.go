package repository

import (
	"errors"

	"clinic-directory/internal/domain/entity"
	domainRepo "clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.BookedAppointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookedAppointment, error) {
	var appointment entity.BookedAppointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.BookedAppointment, error) {
	var appointments []entity.BookedAppointment
	err := db.Preload("Patient").
		Where("doctor_id = ? AND finished = ?", doctorID, false).
		Order("created_at").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkFinished sets finished = true on the matching row regardless of its
// current value, so repeating the call is a no-op and the flag can never
// revert. Zero affected rows means the appointment does not exist.
func (r *appointmentRepository) MarkFinished(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.BookedAppointment{}).
		Where("id = ?", id).
		Update("finished", true)
	return result.RowsAffected, result.Error
}
