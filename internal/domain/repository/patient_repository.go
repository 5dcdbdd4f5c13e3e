package repository

import (
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByEmail(db *gorm.DB, email string) (*entity.Patient, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
}
