package usecase

import (
	"context"
	"testing"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
	"docconnect/internal/repository"
	"docconnect/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserUsecase(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewUserUsecase(db, log, repository.NewUserRepository(), repository.NewChamberRepository(),
		service.NewAuditService(db, log, repository.NewAuditLogRepository()))
	return uc, db
}

func TestCreateUser_Doctor(t *testing.T) {
	uc, db := newUserUsecase(t)

	resp, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:            "Dr. Ayesha Khan",
		Email:           "ayesha@clinic.example.com",
		Password:        "s3cret-pass",
		Role:            "doctor",
		Education:       "MBBS, FCPS",
		Specializations: []string{"cardiology"},
	})
	require.NoError(t, err)

	assert.Equal(t, "doctor", resp.Role)
	assert.True(t, resp.Active)

	// Stored password must be a bcrypt hash, never the plaintext.
	var stored entity.User
	require.NoError(t, db.First(&stored, "email = ?", "ayesha@clinic.example.com").Error)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestCreateUser_RejectsAdminRole(t *testing.T) {
	uc, _ := newUserUsecase(t)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Root",
		Email:    "root@clinic.example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateUser_AssistantRequiresChamber(t *testing.T) {
	uc, db := newUserUsecase(t)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Front Desk",
		Email:    "desk@clinic.example.com",
		Password: "s3cret-pass",
		Role:     "assistant",
	})
	assert.ErrorIs(t, err, ErrAssistantNeedsChamber)

	doctor := seedDoctor(t, db, "Dr. Ayesha Khan")
	chamber := seedChamber(t, db, doctor.ID, entity.VisitingHours{})

	resp, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:              "Front Desk",
		Email:             "desk@clinic.example.com",
		Password:          "s3cret-pass",
		Role:              "assistant",
		AssignedChamberID: chamber.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedChamberID)
	assert.Equal(t, chamber.ID, *resp.AssignedChamberID)
}

func TestGetUsersByRole(t *testing.T) {
	uc, db := newUserUsecase(t)
	seedDoctor(t, db, "Dr. Ayesha Khan")
	seedDoctor(t, db, "Dr. Imran Hossain")

	resp, err := uc.GetUsersByRole(context.Background(), entity.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	empty, err := uc.GetUsersByRole(context.Background(), entity.RoleAssistant)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
}

func TestDeactivateUser(t *testing.T) {
	uc, db := newUserUsecase(t)
	doctor := seedDoctor(t, db, "Dr. Ayesha Khan")

	require.NoError(t, uc.DeactivateUser(context.Background(), doctor.ID))

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", doctor.ID).Error)
	assert.False(t, stored.IsActive())

	// A second deactivation finds no active row.
	err := uc.DeactivateUser(context.Background(), doctor.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
