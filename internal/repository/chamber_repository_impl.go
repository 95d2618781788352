package repository

import (
	"errors"

	"docconnect/internal/domain/entity"
	domainRepo "docconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chamberRepository struct{}

func NewChamberRepository() domainRepo.ChamberRepository {
	return &chamberRepository{}
}

func (r *chamberRepository) Create(db *gorm.DB, chamber *entity.Chamber) error {
	return db.Create(chamber).Error
}

func (r *chamberRepository) Update(db *gorm.DB, chamber *entity.Chamber) error {
	return db.Omit("Doctor").Save(chamber).Error
}

func (r *chamberRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Chamber, error) {
	var chamber entity.Chamber
	err := db.Preload("Doctor").Where("id = ?", id).First(&chamber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chamber, nil
}

func (r *chamberRepository) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Chamber, error) {
	var chamber entity.Chamber
	err := db.Where("id = ? AND active = ?", id, true).First(&chamber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chamber, nil
}

func (r *chamberRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Chamber, error) {
	var chambers []entity.Chamber
	err := db.Where("doctor_id = ?", doctorID).Order("name ASC").Find(&chambers).Error
	if err != nil {
		return nil, err
	}
	return chambers, nil
}

func (r *chamberRepository) FindAllActive(db *gorm.DB) ([]entity.Chamber, error) {
	var chambers []entity.Chamber
	err := db.Preload("Doctor").Where("active = ?", true).Order("name ASC").Find(&chambers).Error
	if err != nil {
		return nil, err
	}
	return chambers, nil
}

func (r *chamberRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Chamber{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	return result.RowsAffected, result.Error
}
