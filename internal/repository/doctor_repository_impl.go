package repository

import (
	"errors"

	"clinic-directory/internal/domain/entity"
	domainRepo "clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDWithRefs(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Hospital").Preload("Occupation").
		Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByAccessState(db *gorm.DB, state entity.AccessState) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Hospital").Preload("Occupation").Preload("Appointments").
		Where("access_state = ?", state).
		Order("created_at DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// UpdateAccessState writes the state unconditionally: approvals and denials
// are legal from any prior state and repeating one is a no-op in effect.
func (r *doctorRepository) UpdateAccessState(db *gorm.DB, id uuid.UUID, state entity.AccessState) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("access_state", state)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) UpdateAttachment(db *gorm.DB, id uuid.UUID, column string, filename string) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update(column, filename)
	return result.RowsAffected, result.Error
}
