package repository

import (
	"errors"

	"clinic-directory/internal/domain/entity"
	domainRepo "clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

// Resolve upserts against the (name, city, address) unique index.
// INSERT ... ON CONFLICT DO NOTHING either creates the row or matches the
// existing one; when nothing was inserted the winner of the race is loaded
// by natural key. Two doctors registering concurrently at a brand-new
// hospital therefore always end up referencing a single record.
func (r *hospitalRepository) Resolve(db *gorm.DB, name, city, address string) (*entity.Hospital, error) {
	hospital := entity.Hospital{
		Name:    name,
		City:    city,
		Address: address,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "city"}, {Name: "address"}},
		DoNothing: true,
	}).Create(&hospital)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return &hospital, nil
	}

	var existing entity.Hospital
	err := db.Where("name = ? AND city = ? AND address = ?", name, city, address).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Order("visiting_time").Order("address").Order("image_url").
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Save(hospital).Error
}

func (r *hospitalRepository) UpdateImage(db *gorm.DB, id uuid.UUID, filename string) (int64, error) {
	result := db.Model(&entity.Hospital{}).
		Where("id = ?", id).
		Update("image_url", filename)
	return result.RowsAffected, result.Error
}
