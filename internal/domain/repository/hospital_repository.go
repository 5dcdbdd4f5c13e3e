package repository

import (
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	// Resolve finds the hospital matching the natural key (name, city,
	// address) or atomically creates it. Implementations must upsert against
	// the unique index, never find-then-insert.
	Resolve(db *gorm.DB, name, city, address string) (*entity.Hospital, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	// FindAll lists hospitals ordered by visiting time, address, image.
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
	// UpdateImage sets the image filename reference. Returns affected rows.
	UpdateImage(db *gorm.DB, id uuid.UUID, filename string) (int64, error)
}
