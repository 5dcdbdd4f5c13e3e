package repository

import (
	"clinic-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type OccupationRepository interface {
	// Resolve finds the occupation by label or atomically creates it, with
	// the same upsert contract as HospitalRepository.Resolve.
	Resolve(db *gorm.DB, label string) (*entity.Occupation, error)
}
