package dto

// Request DTOs

// CreateUserRequest creates a doctor or assistant account (admin only).
type CreateUserRequest struct {
	Name              string   `json:"name" validate:"required,min=2"`
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=6"`
	Role              string   `json:"role" validate:"required,oneof=doctor assistant"`
	Education         string   `json:"education" validate:"omitempty"`
	Specializations   []string `json:"specializations" validate:"omitempty,dive,min=1"`
	AssignedChamberID string   `json:"assigned_chamber_id" validate:"omitempty,uuid"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
