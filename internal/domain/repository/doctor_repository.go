package repository

import (
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	// FindByIDWithRefs loads the doctor with hospital and occupation resolved.
	FindByIDWithRefs(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	// FindByAccessState lists doctors in the given state with hospital,
	// occupation and appointments resolved for display.
	FindByAccessState(db *gorm.DB, state entity.AccessState) ([]entity.Doctor, error)
	// UpdateAccessState is an unconditional single-row write. Returns affected
	// rows: 0 means the doctor does not exist.
	UpdateAccessState(db *gorm.DB, id uuid.UUID, state entity.AccessState) (int64, error)
	// UpdateAttachment sets a filename-reference column (image_url, cv_url).
	// Returns affected rows: 0 means the doctor does not exist.
	UpdateAttachment(db *gorm.DB, id uuid.UUID, column string, filename string) (int64, error)
}
