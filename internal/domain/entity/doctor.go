package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Doctor represents a doctor profile in the directory.
// AccessState is owned exclusively by the approval gate; no other component
// writes it.
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Surname         string          `gorm:"type:varchar(100);not null" json:"surname"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string          `gorm:"type:text;not null" json:"-"`
	OccupationID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"occupation_id"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Experience      int             `gorm:"not null;default:0" json:"experience"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	AccessState     AccessState     `gorm:"type:varchar(20);not null;default:'pending';index" json:"access_state"`
	ImageURL        string          `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CVURL           string          `gorm:"column:cv_url;type:varchar(255)" json:"cv_url,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Occupation   Occupation          `gorm:"foreignKey:OccupationID" json:"occupation,omitempty"`
	Hospital     Hospital            `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Appointments []BookedAppointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.AccessState == "" {
		d.AccessState = AccessPending
	}
	return nil
}
