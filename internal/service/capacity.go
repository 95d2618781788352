package service

import (
	"errors"
	"time"

	"docconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCapacityExceeded = errors.New("maximum appointment limit reached for the selected doctor and chamber on this date")
	ErrDuplicateBooking = errors.New("an appointment already exists with this email for the same doctor, chamber and date")
)

// MaxDailyAppointments is the capacity ceiling of confirmed-track
// appointments per doctor+chamber+date.
const MaxDailyAppointments = 15

// CapacityGuard enforces the daily booking ceiling and duplicate rule.
//
// Both checks are read-then-write with no exclusive lock: two
// near-simultaneous bookings can pass the pre-check, which is why
// verification re-runs AssertUnderCapacity before finalizing a slot.
type CapacityGuard struct {
	appointmentRepo repository.AppointmentRepository
}

func NewCapacityGuard(appointmentRepo repository.AppointmentRepository) *CapacityGuard {
	return &CapacityGuard{appointmentRepo: appointmentRepo}
}

// AssertUnderCapacity returns the current confirmed-track count, or
// ErrCapacityExceeded when the ceiling has been reached.
func (g *CapacityGuard) AssertUnderCapacity(db *gorm.DB, doctorID, chamberID uuid.UUID, date time.Time) (int, error) {
	booked, err := g.appointmentRepo.FindBooked(db, doctorID, chamberID, date)
	if err != nil {
		return 0, err
	}
	if len(booked) >= MaxDailyAppointments {
		return len(booked), ErrCapacityExceeded
	}
	return len(booked), nil
}

// AssertNoDuplicate fails when any appointment, whatever its status,
// already exists for the doctor+chamber+patientEmail+date tuple.
func (g *CapacityGuard) AssertNoDuplicate(db *gorm.DB, doctorID, chamberID uuid.UUID, patientEmail string, date time.Time) error {
	existing, err := g.appointmentRepo.FindDuplicate(db, doctorID, chamberID, patientEmail, date)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateBooking
	}
	return nil
}
