package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"docconnect/internal/delivery/http/middleware"
	"docconnect/internal/domain/entity"
	"docconnect/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Chamber{},
		&entity.Appointment{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}

// staffContext mimics what the auth middleware puts on the request
// context for an authenticated staff member.
func staffContext(userID uuid.UUID, role entity.Role) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleKey, role)
}

// captureMailer records outgoing messages instead of sending them.
type captureMailer struct {
	messages []service.EmailMessage
	fail     bool
}

func (m *captureMailer) Send(ctx context.Context, msg service.EmailMessage) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.messages = append(m.messages, msg)
	return nil
}

func seedDoctor(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()
	doctor := &entity.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@clinic.example.com", uuid.NewString()[:8]),
		Password: "not-a-real-hash",
		Role:     entity.RoleDoctor,
		Active:   boolPtr(true),
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}

func seedChamber(t *testing.T, db *gorm.DB, doctorID uuid.UUID, hours entity.VisitingHours) *entity.Chamber {
	t.Helper()
	chamber := &entity.Chamber{
		Name:          "City Care Chamber",
		DoctorID:      doctorID,
		Address:       "12 Green Road, Dhaka",
		Contact:       "+8801700000000",
		Fee:           decimal.NewFromInt(800),
		VisitingHours: datatypes.NewJSONType(hours),
		Active:        boolPtr(true),
	}
	if err := db.Create(chamber).Error; err != nil {
		t.Fatalf("failed to seed chamber: %v", err)
	}
	return chamber
}

func seedAssistant(t *testing.T, db *gorm.DB, chamberID uuid.UUID) *entity.User {
	t.Helper()
	assistant := &entity.User{
		Name:              "Front Desk",
		Email:             fmt.Sprintf("%s@clinic.example.com", uuid.NewString()[:8]),
		Password:          "not-a-real-hash",
		Role:              entity.RoleAssistant,
		AssignedChamberID: &chamberID,
		Active:            boolPtr(true),
	}
	if err := db.Create(assistant).Error; err != nil {
		t.Fatalf("failed to seed assistant: %v", err)
	}
	return assistant
}
