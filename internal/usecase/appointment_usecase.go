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
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrChamberNotFound     = errors.New("chamber not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrActorNotFound       = errors.New("user not found in context")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.AppointmentResponse, error)
	ResendCode(ctx context.Context, req *dto.ResendCodeRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	chamberRepo     repository.ChamberRepository
	userRepo        repository.UserRepository
	slots           *service.SlotResolver
	capacity        *service.CapacityGuard
	codes           *service.CodeIssuer
	mailer          service.EmailSender
	audit           service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	chamberRepo repository.ChamberRepository,
	userRepo repository.UserRepository,
	slots *service.SlotResolver,
	capacity *service.CapacityGuard,
	codes *service.CodeIssuer,
	mailer service.EmailSender,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		chamberRepo:     chamberRepo,
		userRepo:        userRepo,
		slots:           slots,
		capacity:        capacity,
		codes:           codes,
		mailer:          mailer,
		audit:           audit,
	}
}

// Create books a new appointment in the requested state.
//
// Flow:
// 1. Resolve active doctor and chamber
// 2. Normalize the date to the clinic timezone, check the weekday label
// 3. Resolve the chamber's visiting hours for that weekday
// 4. Duplicate and capacity pre-checks (re-checked at verification)
// 5. Persist with a fresh verification code and the next serial number
// 6. Email the code to the patient
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}
	chamberID, err := uuid.Parse(req.ChamberID)
	if err != nil {
		return nil, ErrChamberNotFound
	}

	doctor, err := u.userRepo.FindActiveDoctorByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	chamber, err := u.chamberRepo.FindActiveByID(db, chamberID)
	if err != nil {
		u.log.Warnf("Failed to find chamber %s: %+v", chamberID, err)
		return nil, err
	}
	if chamber == nil {
		return nil, ErrChamberNotFound
	}

	date, err := u.slots.ResolveDate(req.Date, req.Weekday)
	if err != nil {
		return nil, err
	}

	hour, err := u.slots.ResolveVisitingHour(chamber.VisitingHours.Data(), req.Weekday)
	if err != nil {
		return nil, err
	}

	if err := u.capacity.AssertNoDuplicate(db, doctorID, chamberID, req.PatientEmail, date); err != nil {
		return nil, err
	}

	booked, err := u.capacity.AssertUnderCapacity(db, doctorID, chamberID, date)
	if err != nil {
		return nil, err
	}

	code, err := u.codes.Generate()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:         doctorID,
		ChamberID:        chamberID,
		PatientName:      req.PatientName,
		PatientEmail:     req.PatientEmail,
		Date:             date,
		Weekday:          req.Weekday,
		Time:             hour.Start,
		VerificationCode: code,
		SerialNo:         booked + 1,
		Status:           entity.StatusRequested,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	_ = u.audit.LogCreate(ctx, db, nil, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), string(appointment.Status))

	u.log.Infof("Appointment created: id=%s, doctor=%s, chamber=%s, serial=%d",
		appointment.ID, doctorID, chamberID, appointment.SerialNo)

	// The appointment is already persisted; a failed send surfaces as an
	// error without rolling the record back.
	if err := u.sendVerificationEmail(ctx, appointment, doctor.Name); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// VerifyCode advances a requested appointment to verified after the
// patient submits the emailed code. Capacity is re-checked here because
// two concurrent bookings can both pass the pre-check in Create.
func (u *appointmentUsecase) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindRequestedByIDAndCode(db, appointmentID, req.Code)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	now, err := u.slots.ParseInstant(req.CurrentTime)
	if err != nil {
		return nil, err
	}

	if u.codes.IsExpired(appointment.UpdatedAt, now) {
		return nil, service.ErrCodeExpired
	}

	if _, err := u.capacity.AssertUnderCapacity(db, appointment.DoctorID, appointment.ChamberID, appointment.Date); err != nil {
		return nil, err
	}

	next, err := service.NextStatus(appointment.Status, service.IntentAdvance, "")
	if err != nil {
		return nil, err
	}
	appointment.Status = next

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	_ = u.audit.LogUpdate(ctx, db, nil, entity.AuditActionAppointmentVerify,
		"appointment", appointment.ID.String(), string(entity.StatusRequested), string(appointment.Status))

	doctor, err := u.userRepo.FindByID(db, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}

	doctorName := ""
	if doctor != nil {
		doctorName = doctor.Name
	}
	if err := u.sendConfirmationEmail(ctx, appointment, doctorName); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ResendCode issues a fresh verification code for an appointment still
// in the requested state. Saving the record resets the expiry window.
func (u *appointmentUsecase) ResendCode(ctx context.Context, req *dto.ResendCodeRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindRequestedByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	code, err := u.codes.Generate()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return nil, err
	}
	appointment.VerificationCode = code

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	doctor, err := u.userRepo.FindByID(db, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}

	doctorName := ""
	if doctor != nil {
		doctorName = doctor.Name
	}
	if err := u.sendVerificationEmail(ctx, appointment, doctorName); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus progresses or cancels an appointment on behalf of staff.
// The transition table is role-aware: only a doctor can complete an
// ongoing visit. A staff-triggered requested -> verified transition
// performs the same capacity re-check as code verification.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}
	actor, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrActorNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	intent := service.IntentAdvance
	if req.Cancel != nil && *req.Cancel == 1 {
		intent = service.IntentCancel
	}

	next, err := service.NextStatus(appointment.Status, intent, actor.Role)
	if err != nil {
		return nil, err
	}

	if appointment.Status == entity.StatusRequested && next == entity.StatusVerified {
		if _, err := u.capacity.AssertUnderCapacity(db, appointment.DoctorID, appointment.ChamberID, appointment.Date); err != nil {
			return nil, err
		}
	}

	previous := appointment.Status
	appointment.Status = next

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	_ = u.audit.LogUpdate(ctx, db, &userID, entity.AuditActionAppointmentStatus,
		"appointment", appointment.ID.String(), string(previous), string(next))

	u.log.Infof("Appointment status updated: id=%s, %s -> %s, actor=%s",
		appointment.ID, previous, next, actor.Role)

	resp := converter.AppointmentToResponse(appointment)
	resp.VerificationCode = ""
	return resp, nil
}

// GetAll lists appointments for staff with optional filters. Assistants
// only ever see their assigned chamber.
func (u *appointmentUsecase) GetAll(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	filter := &entity.AppointmentFilter{
		PatientName:  query.PatientName,
		PatientEmail: query.PatientEmail,
		Status:       entity.AppointmentStatus(query.Status),
	}

	if query.StartDate != "" {
		start, err := u.slots.NormalizeDate(query.StartDate)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := u.slots.NormalizeDate(query.EndDate)
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}
	if query.ChamberID != "" {
		chamberID, err := uuid.Parse(query.ChamberID)
		if err != nil {
			return nil, ErrChamberNotFound
		}
		filter.ChamberID = &chamberID
	}

	// Assistants are scoped to their assigned chamber regardless of the
	// requested filter.
	if role, ok := middleware.GetRoleFromContext(ctx); ok && role == entity.RoleAssistant {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok {
			return nil, ErrActorNotFound
		}
		assistant, err := u.userRepo.FindByID(db, userID)
		if err != nil {
			u.log.Warnf("Failed to find assistant %s: %+v", userID, err)
			return nil, err
		}
		if assistant != nil && assistant.AssignedChamberID != nil {
			filter.ChamberID = assistant.AssignedChamberID
		}
	}

	appointments, err := u.appointmentRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) sendVerificationEmail(ctx context.Context, appointment *entity.Appointment, doctorName string) error {
	body, err := service.RenderVerificationEmail(appointment.PatientName, doctorName, appointment.VerificationCode)
	if err != nil {
		u.log.Warnf("Failed to render verification email: %+v", err)
		return err
	}
	return u.mailer.Send(ctx, service.EmailMessage{
		To:      appointment.PatientEmail,
		ToName:  appointment.PatientName,
		Subject: service.SubjectVerification,
		HTML:    body,
	})
}

func (u *appointmentUsecase) sendConfirmationEmail(ctx context.Context, appointment *entity.Appointment, doctorName string) error {
	body, err := service.RenderConfirmationEmail(appointment.PatientName, doctorName,
		u.slots.InClinicZone(appointment.Date), appointment.Time)
	if err != nil {
		u.log.Warnf("Failed to render confirmation email: %+v", err)
		return err
	}
	return u.mailer.Send(ctx, service.EmailMessage{
		To:      appointment.PatientEmail,
		ToName:  appointment.PatientName,
		Subject: service.SubjectConfirmation,
		HTML:    body,
	})
}
