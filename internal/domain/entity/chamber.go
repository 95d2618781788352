package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VisitingHour is one weekday's consultation window. Empty start or end
// means the chamber is closed that day.
type VisitingHour struct {
	Start     string `json:"start"` // HH:MM local time
	End       string `json:"end"`   // HH:MM local time
	NoOfSlots int    `json:"noOfSlots,omitempty"`
}

// IsClosed reports whether the chamber takes no appointments on this day.
func (v VisitingHour) IsClosed() bool {
	return v.Start == "" || v.End == ""
}

// VisitingHours maps lowercase weekday names ("sunday".."saturday") to
// that day's consultation window.
type VisitingHours map[string]VisitingHour

// For looks up the window for a weekday name, case-insensitively.
func (v VisitingHours) For(weekday string) (VisitingHour, bool) {
	hour, ok := v[strings.ToLower(weekday)]
	return hour, ok
}

// Chamber represents a doctor's practice location with its weekly
// visiting-hours schedule.
type Chamber struct {
	ID            uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string                            `gorm:"type:varchar(255);not null" json:"name"`
	DoctorID      uuid.UUID                         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Address       string                            `gorm:"type:text;not null" json:"address"`
	Contact       string                            `gorm:"type:varchar(50);not null" json:"contact"`
	Fee           decimal.Decimal                   `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`
	VisitingHours datatypes.JSONType[VisitingHours] `json:"visiting_hours"`
	Active        *bool                             `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Chamber) TableName() string {
	return "chambers"
}

func (c *Chamber) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the chamber accepts bookings.
func (c *Chamber) IsActive() bool {
	return c.Active != nil && *c.Active
}
