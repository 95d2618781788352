package usecase

import (
	"context"
	"testing"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
	"docconnect/internal/repository"
	"docconnect/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChamberUsecase(t *testing.T) (ChamberUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewChamberUsecase(db, log, repository.NewChamberRepository(), repository.NewUserRepository(),
		service.NewAuditService(db, log, repository.NewAuditLogRepository()))
	return uc, db
}

func chamberRequest(doctorID string) *dto.CreateChamberRequest {
	return &dto.CreateChamberRequest{
		Name:     "City Care Chamber",
		DoctorID: doctorID,
		Address:  "12 Green Road, Dhaka",
		Contact:  "+8801700000000",
		Fee:      decimal.NewFromInt(800),
		VisitingHours: map[string]dto.VisitingHourRequest{
			"monday":   {Start: "18:00", End: "21:00", NoOfSlots: 15},
			"saturday": {},
		},
	}
}

func TestCreateChamber(t *testing.T) {
	uc, db := newChamberUsecase(t)
	doctor := seedDoctor(t, db, "Dr. Ayesha Khan")

	resp, err := uc.CreateChamber(context.Background(), chamberRequest(doctor.ID.String()))
	require.NoError(t, err)

	assert.Equal(t, doctor.ID, resp.DoctorID)
	assert.True(t, resp.Active)
	assert.Equal(t, "18:00", resp.VisitingHours["monday"].Start)

	// Days submitted without a window round-trip as closed.
	saturday, ok := resp.VisitingHours["saturday"]
	require.True(t, ok)
	assert.Empty(t, saturday.Start)
}

func TestCreateChamber_UnknownDoctor(t *testing.T) {
	uc, _ := newChamberUsecase(t)

	_, err := uc.CreateChamber(context.Background(),
		chamberRequest("11111111-1111-1111-1111-111111111111"))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateChamber_DoctorOwnsOnlyTheirOwn(t *testing.T) {
	uc, db := newChamberUsecase(t)
	owner := seedDoctor(t, db, "Dr. Ayesha Khan")
	other := seedDoctor(t, db, "Dr. Imran Hossain")

	_, err := uc.CreateChamber(staffContext(other.ID, entity.RoleDoctor),
		chamberRequest(owner.ID.String()))
	assert.ErrorIs(t, err, ErrChamberNotOwned)

	_, err = uc.CreateChamber(staffContext(owner.ID, entity.RoleDoctor),
		chamberRequest(owner.ID.String()))
	assert.NoError(t, err)
}

func TestUpdateChamber_PartialUpdate(t *testing.T) {
	uc, db := newChamberUsecase(t)
	doctor := seedDoctor(t, db, "Dr. Ayesha Khan")

	created, err := uc.CreateChamber(context.Background(), chamberRequest(doctor.ID.String()))
	require.NoError(t, err)

	fee := decimal.NewFromInt(1000)
	updated, err := uc.UpdateChamber(context.Background(), created.ID, &dto.UpdateChamberRequest{
		Name: "Uptown Chamber",
		Fee:  &fee,
	})
	require.NoError(t, err)

	assert.Equal(t, "Uptown Chamber", updated.Name)
	assert.True(t, updated.Fee.Equal(fee))
	// Untouched fields keep their values.
	assert.Equal(t, created.Address, updated.Address)
	assert.Equal(t, "18:00", updated.VisitingHours["monday"].Start)
}

func TestDeactivateChamber(t *testing.T) {
	uc, db := newChamberUsecase(t)
	doctor := seedDoctor(t, db, "Dr. Ayesha Khan")

	created, err := uc.CreateChamber(context.Background(), chamberRequest(doctor.ID.String()))
	require.NoError(t, err)

	require.NoError(t, uc.DeactivateChamber(context.Background(), created.ID))

	listed, err := uc.GetActiveChambers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, listed.Total)

	err = uc.DeactivateChamber(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrChamberNotFound)
}
