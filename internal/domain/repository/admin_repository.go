package repository

import (
	"clinic-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(db *gorm.DB, admin *entity.Admin) error
	FindByUsername(db *gorm.DB, username string) (*entity.Admin, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error)
}
