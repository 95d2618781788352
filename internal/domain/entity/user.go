package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a staff account (admin, doctor or assistant)
type User struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string                      `gorm:"type:varchar(255);not null" json:"name"`
	Email           string                      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string                      `gorm:"type:text;not null" json:"-"`
	Role            Role                        `gorm:"type:varchar(20);not null;index" json:"role"`
	Education       string                      `gorm:"type:text" json:"education,omitempty"`
	Specializations datatypes.JSONSlice[string] `json:"specializations,omitempty"`
	// AssignedChamberID scopes an assistant to a single chamber.
	AssignedChamberID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_chamber_id,omitempty"`
	Active            *bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AssignedChamber *Chamber  `gorm:"foreignKey:AssignedChamberID" json:"assigned_chamber,omitempty"`
	Chambers        []Chamber `gorm:"foreignKey:DoctorID" json:"chambers,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool {
	return u.Active != nil && *u.Active
}
