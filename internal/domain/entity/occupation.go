package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Occupation is a shared reference entity keyed by its label, resolved with
// the same find-or-create contract as Hospital.
type Occupation struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"label"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:OccupationID" json:"doctors,omitempty"`
}

func (Occupation) TableName() string {
	return "occupations"
}

func (o *Occupation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
