package repository

import (
	"errors"
	"strings"
	"time"

	"docconnect/internal/domain/entity"
	domainRepo "docconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Chamber").Save(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindRequestedByIDAndCode(db *gorm.DB, id uuid.UUID, code string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ? AND verification_code = ? AND status = ?", id, code, entity.StatusRequested).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindRequestedByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ? AND status = ?", id, entity.StatusRequested).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDuplicate(db *gorm.DB, doctorID, chamberID uuid.UUID, patientEmail string, date time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND chamber_id = ? AND patient_email = ? AND date = ?",
		doctorID, chamberID, patientEmail, date).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindBooked(db *gorm.DB, doctorID, chamberID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND chamber_id = ? AND date = ? AND status IN ?",
		doctorID, chamberID, date, entity.ConfirmedStatuses).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindAll applies the optional filters. Name and email matching is done
// with LOWER(...) LIKE so it behaves identically on postgres and the
// sqlite test database.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.StartDate != nil {
			query = query.Where("date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("date <= ?", *filter.EndDate)
		}
		if filter.ChamberID != nil {
			query = query.Where("chamber_id = ?", *filter.ChamberID)
		}
		if filter.PatientName != "" {
			query = query.Where("LOWER(patient_name) LIKE ?", "%"+strings.ToLower(filter.PatientName)+"%")
		}
		if filter.PatientEmail != "" {
			query = query.Where("LOWER(patient_email) LIKE ?", "%"+strings.ToLower(filter.PatientEmail)+"%")
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	err := query.Order("date ASC, time ASC, serial_no ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
