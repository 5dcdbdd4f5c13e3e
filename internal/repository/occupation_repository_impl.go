package repository

import (
	"clinic-directory/internal/domain/entity"
	domainRepo "clinic-directory/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type occupationRepository struct{}

func NewOccupationRepository() domainRepo.OccupationRepository {
	return &occupationRepository{}
}

// Resolve upserts against the unique label index, same contract as
// hospitalRepository.Resolve.
func (r *occupationRepository) Resolve(db *gorm.DB, label string) (*entity.Occupation, error) {
	occupation := entity.Occupation{Label: label}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "label"}},
		DoNothing: true,
	}).Create(&occupation)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return &occupation, nil
	}

	var existing entity.Occupation
	if err := db.Where("label = ?", label).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
