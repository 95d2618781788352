package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	StartDate    *time.Time // inclusive lower bound on appointment date
	EndDate      *time.Time // inclusive upper bound on appointment date
	ChamberID    *uuid.UUID
	PatientName  string // case-insensitive substring match
	PatientEmail string // case-insensitive substring match
	Status       AppointmentStatus
}
