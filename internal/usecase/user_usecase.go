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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidRole           = errors.New("role must be doctor or assistant")
	ErrAssistantNeedsChamber = errors.New("assistant accounts require an assigned chamber")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	GetUsersByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}

type userUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	chamberRepo repository.ChamberRepository
	audit       service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	chamberRepo repository.ChamberRepository,
	audit service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		chamberRepo: chamberRepo,
		audit:       audit,
	}
}

// CreateUser creates a doctor or assistant account. Admin accounts are
// provisioned out of band.
func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	role := entity.Role(req.Role)
	if !role.IsStaff() {
		return nil, ErrInvalidRole
	}

	var assignedChamberID *uuid.UUID
	if role == entity.RoleAssistant {
		if req.AssignedChamberID == "" {
			return nil, ErrAssistantNeedsChamber
		}
		chamberID, err := uuid.Parse(req.AssignedChamberID)
		if err != nil {
			return nil, ErrChamberNotFound
		}
		chamber, err := u.chamberRepo.FindActiveByID(db, chamberID)
		if err != nil {
			u.log.Warnf("Failed to find chamber %s: %+v", chamberID, err)
			return nil, err
		}
		if chamber == nil {
			return nil, ErrChamberNotFound
		}
		assignedChamberID = &chamberID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashedPassword),
		Role:              role,
		Education:         req.Education,
		Specializations:   req.Specializations,
		AssignedChamberID: assignedChamberID,
		Active:            &active,
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.audit.LogCreate(ctx, db, &actorID, entity.AuditActionUserCreate,
		"user", user.ID.String(), string(user.Role))

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUsersByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), role)
	if err != nil {
		u.log.Warnf("Failed to list users by role %s: %+v", role, err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	affected, err := u.userRepo.Deactivate(db, userID)
	if err != nil {
		u.log.Warnf("Failed to deactivate user %s: %+v", userID, err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.audit.LogAction(ctx, db, &actorID, entity.AuditActionUserDeactivate, entity.JSON{
		"entity":    "user",
		"entity_id": userID.String(),
	})

	return nil
}
