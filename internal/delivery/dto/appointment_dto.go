package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName  string `json:"patientName" validate:"required,min=1"`
	PatientEmail string `json:"patientEmail" validate:"required,email"`
	DoctorID     string `json:"doctorId" validate:"required,uuid"`
	ChamberID    string `json:"chamberId" validate:"required,uuid"`
	Date         string `json:"date" validate:"required"` // ISO date
	Weekday      string `json:"weekday" validate:"required,weekday"`
}

type VerifyCodeRequest struct {
	Code          string `json:"code" validate:"required,len=8"`
	CurrentTime   string `json:"currentTime" validate:"required"` // ISO datetime
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
}

type ResendCodeRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
}

type UpdateStatusRequest struct {
	// Cancel selects the transition intent: 1 cancels, 0 advances.
	Cancel *int `json:"cancel" validate:"required,oneof=0 1"`
}

// ListAppointmentsQuery carries the optional staff list filters.
type ListAppointmentsQuery struct {
	StartDate    string `validate:"omitempty"`
	EndDate      string `validate:"omitempty"`
	ChamberID    string `validate:"omitempty,uuid"`
	PatientName  string `validate:"omitempty"`
	PatientEmail string `validate:"omitempty"`
	Status       string `validate:"omitempty,oneof=requested verified queued cancelled ongoing completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	ChamberID        uuid.UUID `json:"chamber_id"`
	PatientName      string    `json:"patient_name"`
	PatientEmail     string    `json:"patient_email"`
	Date             time.Time `json:"date"`
	Weekday          string    `json:"weekday"`
	Time             string    `json:"time"`
	VerificationCode string    `json:"verification_code,omitempty"`
	SerialNo         int       `json:"serial_no"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
