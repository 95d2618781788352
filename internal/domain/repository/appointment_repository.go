package repository

import (
	"time"

	"docconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindRequestedByIDAndCode matches an appointment still awaiting its
	// verification code.
	FindRequestedByIDAndCode(db *gorm.DB, id uuid.UUID, code string) (*entity.Appointment, error)
	FindRequestedByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindDuplicate returns any appointment (whatever its status) for the
	// same doctor, chamber, patient email and day.
	FindDuplicate(db *gorm.DB, doctorID, chamberID uuid.UUID, patientEmail string, date time.Time) (*entity.Appointment, error)
	// FindBooked returns the confirmed-track appointments (verified,
	// queued, ongoing, completed) for a doctor+chamber+date, ordered by
	// time ascending.
	FindBooked(db *gorm.DB, doctorID, chamberID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
}
