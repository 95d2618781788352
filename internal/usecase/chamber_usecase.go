package usecase

import (
	"context"
	"errors"

	"docconnect/internal/converter"
	"docconnect/internal/delivery/dto"
	"docconnect/internal/delivery/http/middleware"
	"docconnect/internal/domain/entity"
	"docconnect/internal/domain/repository"
	"docconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrChamberNotOwned = errors.New("chamber does not belong to you")

type ChamberUsecase interface {
	CreateChamber(ctx context.Context, req *dto.CreateChamberRequest) (*dto.ChamberResponse, error)
	GetChamber(ctx context.Context, chamberID uuid.UUID) (*dto.ChamberResponse, error)
	GetActiveChambers(ctx context.Context) (*dto.ChamberListResponse, error)
	UpdateChamber(ctx context.Context, chamberID uuid.UUID, req *dto.UpdateChamberRequest) (*dto.ChamberResponse, error)
	DeactivateChamber(ctx context.Context, chamberID uuid.UUID) error
}

type chamberUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	chamberRepo repository.ChamberRepository
	userRepo    repository.UserRepository
	audit       service.AuditService
}

func NewChamberUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	chamberRepo repository.ChamberRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) ChamberUsecase {
	return &chamberUsecase{
		db:          db,
		log:         log,
		chamberRepo: chamberRepo,
		userRepo:    userRepo,
		audit:       audit,
	}
}

func (u *chamberUsecase) CreateChamber(ctx context.Context, req *dto.CreateChamberRequest) (*dto.ChamberResponse, error) {
	db := u.db.WithContext(ctx)

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.userRepo.FindActiveDoctorByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// A doctor may only create chambers for themselves; admins may
	// create for any doctor.
	if role, ok := middleware.GetRoleFromContext(ctx); ok && role == entity.RoleDoctor {
		actorID, _ := middleware.GetUserIDFromContext(ctx)
		if actorID != doctorID {
			return nil, ErrChamberNotOwned
		}
	}

	active := true
	chamber := &entity.Chamber{
		Name:          req.Name,
		DoctorID:      doctorID,
		Address:       req.Address,
		Contact:       req.Contact,
		Fee:           req.Fee,
		VisitingHours: datatypes.NewJSONType(converter.VisitingHoursFromRequest(req.VisitingHours)),
		Active:        &active,
	}

	if err := u.chamberRepo.Create(db, chamber); err != nil {
		u.log.Warnf("Failed to create chamber: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.audit.LogCreate(ctx, db, &actorID, entity.AuditActionChamberCreate,
		"chamber", chamber.ID.String(), chamber.Name)

	return converter.ChamberToResponse(chamber), nil
}

func (u *chamberUsecase) GetChamber(ctx context.Context, chamberID uuid.UUID) (*dto.ChamberResponse, error) {
	chamber, err := u.chamberRepo.FindByID(u.db.WithContext(ctx), chamberID)
	if err != nil {
		u.log.Warnf("Failed to find chamber %s: %+v", chamberID, err)
		return nil, err
	}
	if chamber == nil {
		return nil, ErrChamberNotFound
	}
	return converter.ChamberToResponse(chamber), nil
}

func (u *chamberUsecase) GetActiveChambers(ctx context.Context) (*dto.ChamberListResponse, error) {
	chambers, err := u.chamberRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list chambers: %+v", err)
		return nil, err
	}

	return &dto.ChamberListResponse{
		Chambers: converter.ChambersToResponses(chambers),
		Total:    len(chambers),
	}, nil
}

func (u *chamberUsecase) UpdateChamber(ctx context.Context, chamberID uuid.UUID, req *dto.UpdateChamberRequest) (*dto.ChamberResponse, error) {
	db := u.db.WithContext(ctx)

	chamber, err := u.chamberRepo.FindByID(db, chamberID)
	if err != nil {
		u.log.Warnf("Failed to find chamber %s: %+v", chamberID, err)
		return nil, err
	}
	if chamber == nil {
		return nil, ErrChamberNotFound
	}

	if role, ok := middleware.GetRoleFromContext(ctx); ok && role == entity.RoleDoctor {
		actorID, _ := middleware.GetUserIDFromContext(ctx)
		if actorID != chamber.DoctorID {
			return nil, ErrChamberNotOwned
		}
	}

	if req.Name != "" {
		chamber.Name = req.Name
	}
	if req.Address != "" {
		chamber.Address = req.Address
	}
	if req.Contact != "" {
		chamber.Contact = req.Contact
	}
	if req.Fee != nil {
		chamber.Fee = *req.Fee
	}
	if req.VisitingHours != nil {
		chamber.VisitingHours = datatypes.NewJSONType(converter.VisitingHoursFromRequest(req.VisitingHours))
	}

	if err := u.chamberRepo.Update(db, chamber); err != nil {
		u.log.Warnf("Failed to update chamber %s: %+v", chamberID, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.audit.LogUpdate(ctx, db, &actorID, entity.AuditActionChamberUpdate,
		"chamber", chamber.ID.String(), nil, chamber.Name)

	return converter.ChamberToResponse(chamber), nil
}

func (u *chamberUsecase) DeactivateChamber(ctx context.Context, chamberID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	chamber, err := u.chamberRepo.FindByID(db, chamberID)
	if err != nil {
		u.log.Warnf("Failed to find chamber %s: %+v", chamberID, err)
		return err
	}
	if chamber == nil {
		return ErrChamberNotFound
	}

	if role, ok := middleware.GetRoleFromContext(ctx); ok && role == entity.RoleDoctor {
		actorID, _ := middleware.GetUserIDFromContext(ctx)
		if actorID != chamber.DoctorID {
			return ErrChamberNotOwned
		}
	}

	affected, err := u.chamberRepo.Deactivate(db, chamberID)
	if err != nil {
		u.log.Warnf("Failed to deactivate chamber %s: %+v", chamberID, err)
		return err
	}
	if affected == 0 {
		return ErrChamberNotFound
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.audit.LogAction(ctx, db, &actorID, entity.AuditActionChamberDeactivate, entity.JSON{
		"entity":    "chamber",
		"entity_id": chamberID.String(),
	})

	return nil
}
