package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital is a shared reference entity created lazily the first time a
// doctor registers at it. The natural key (name, city, address) is unique;
// the registry upserts against that index so concurrent registrations can
// never produce duplicates.
type Hospital struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_hospitals_natural_key" json:"name"`
	City         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_hospitals_natural_key" json:"city"`
	Address      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_hospitals_natural_key" json:"address"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	VisitingTime string    `gorm:"type:varchar(100)" json:"visiting_time,omitempty"`
	ImageURL     string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
