package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// VisitingHourRequest is one weekday's window. Both start and end empty
// marks the day closed.
type VisitingHourRequest struct {
	Start     string `json:"start" validate:"omitempty,hhmm"`
	End       string `json:"end" validate:"omitempty,hhmm"`
	NoOfSlots int    `json:"noOfSlots" validate:"omitempty,min=0"`
}

type CreateChamberRequest struct {
	Name          string                         `json:"name" validate:"required,min=2"`
	DoctorID      string                         `json:"doctor_id" validate:"required,uuid"`
	Address       string                         `json:"address" validate:"required"`
	Contact       string                         `json:"contact" validate:"required"`
	Fee           decimal.Decimal                `json:"fee" validate:"omitempty"`
	VisitingHours map[string]VisitingHourRequest `json:"visiting_hours" validate:"required,dive,keys,weekday,endkeys"`
}

type UpdateChamberRequest struct {
	Name          string                         `json:"name" validate:"omitempty,min=2"`
	Address       string                         `json:"address" validate:"omitempty"`
	Contact       string                         `json:"contact" validate:"omitempty"`
	Fee           *decimal.Decimal               `json:"fee" validate:"omitempty"`
	VisitingHours map[string]VisitingHourRequest `json:"visiting_hours" validate:"omitempty,dive,keys,weekday,endkeys"`
}

// Response DTOs

type ChamberResponse struct {
	ID            uuid.UUID                      `json:"id"`
	Name          string                         `json:"name"`
	DoctorID      uuid.UUID                      `json:"doctor_id"`
	DoctorName    string                         `json:"doctor_name,omitempty"`
	Address       string                         `json:"address"`
	Contact       string                         `json:"contact"`
	Fee           decimal.Decimal                `json:"fee"`
	VisitingHours map[string]VisitingHourRequest `json:"visiting_hours"`
	Active        bool                           `json:"active"`
	CreatedAt     time.Time                      `json:"created_at"`
	UpdatedAt     time.Time                      `json:"updated_at"`
}

type ChamberListResponse struct {
	Chambers []ChamberResponse `json:"chambers"`
	Total    int               `json:"total"`
}
