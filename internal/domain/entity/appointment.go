package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookedAppointment is a ledger record between a doctor and a patient.
// Finished is monotonic: it moves from false to true exactly once and never
// reverts. A patient may hold at most one unfinished appointment with a given
// doctor, enforced by a partial unique index.
type BookedAppointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_active_booking,where:finished = false" json:"doctor_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_active_booking,where:finished = false" json:"patient_id"`
	Finished  bool      `gorm:"not null;default:false" json:"finished"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (BookedAppointment) TableName() string {
	return "booked_appointments"
}

func (b *BookedAppointment) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// IsFinished checks if the appointment has been completed
func (b *BookedAppointment) IsFinished() bool {
	return b.Finished
}
