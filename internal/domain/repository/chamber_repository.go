package repository

import (
	"docconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChamberRepository interface {
	Create(db *gorm.DB, chamber *entity.Chamber) error
	Update(db *gorm.DB, chamber *entity.Chamber) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Chamber, error)
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Chamber, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Chamber, error)
	FindAllActive(db *gorm.DB) ([]entity.Chamber, error)
	// Deactivate marks a chamber inactive. Returns affected rows:
	// 1 = success, 0 = already inactive or missing.
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
