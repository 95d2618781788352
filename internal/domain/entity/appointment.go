package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents a stage of the appointment workflow
type AppointmentStatus string

const (
	StatusRequested AppointmentStatus = "requested"
	StatusVerified  AppointmentStatus = "verified"
	StatusQueued    AppointmentStatus = "queued"
	StatusOngoing   AppointmentStatus = "ongoing"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ConfirmedStatuses are the statuses that occupy a slot against the
// daily capacity ceiling.
var ConfirmedStatuses = []AppointmentStatus{
	StatusVerified,
	StatusQueued,
	StatusOngoing,
	StatusCompleted,
}

// Valid reports whether s is one of the known workflow statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusVerified, StatusQueued, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a patient's booking for a doctor at a chamber
// on a specific day.
type Appointment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ChamberID    uuid.UUID `gorm:"type:uuid;not null;index" json:"chamber_id"`
	PatientName  string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail string    `gorm:"type:varchar(255);not null;index" json:"patient_email"`
	// Date is midnight of the appointment day in the clinic timezone,
	// stored as an instant. All duplicate and capacity checks bucket
	// by this value.
	Date    time.Time `gorm:"not null;index" json:"date"`
	Weekday string    `gorm:"type:varchar(10);not null" json:"weekday"`
	// Time is the visiting-hours start for the booked weekday, HH:MM.
	Time             string            `gorm:"type:varchar(5);not null" json:"time"`
	VerificationCode string            `gorm:"type:varchar(8)" json:"-"`
	SerialNo         int               `gorm:"not null" json:"serial_no"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Chamber Chamber `gorm:"foreignKey:ChamberID" json:"chamber,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsRequested checks if the appointment is still awaiting verification
func (a *Appointment) IsRequested() bool {
	return a.Status == StatusRequested
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
