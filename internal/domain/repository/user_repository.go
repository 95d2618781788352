package repository

import (
	"docconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	// FindActiveDoctorByID returns the user only when it is an active
	// doctor account.
	FindActiveDoctorByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	// Deactivate marks a user inactive. Returns affected rows.
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
