package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/service"
	"docconnect/internal/usecase"
	"docconnect/pkg/response"
	"docconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles public appointment booking
// @Summary Book an appointment
// @Description Create an appointment in the requested state and email a verification code
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.mapError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// VerifyCode handles patient code verification
// @Summary Verify an appointment code
// @Description Advance a requested appointment to verified using the emailed code
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.VerifyCodeRequest true "Verify Code Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /appointments/verify-code [post]
func (h *AppointmentHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.VerifyCode(r.Context(), &req)
	if err != nil {
		h.mapError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Code verified successfully", appointment)
}

// ResendCode regenerates the verification code for a requested appointment
// @Summary Resend the verification code
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.ResendCodeRequest true "Resend Code Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/resend-code [post]
func (h *AppointmentHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req dto.ResendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.ResendCode(r.Context(), &req)
	if err != nil {
		h.mapError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Code resent successfully", appointment)
}

// UpdateStatus progresses or cancels an appointment (staff only)
// @Summary Update appointment status
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /appointments/update-status/{id} [put]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		h.mapError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// GetAll lists appointments with filters (staff only)
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param startDate query string false "Start date (ISO)"
// @Param endDate query string false "End date (ISO)"
// @Param chamberId query string false "Chamber ID"
// @Param patientName query string false "Patient name substring"
// @Param patientEmail query string false "Patient email substring"
// @Param status query string false "Status"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.ListAppointmentsQuery{
		StartDate:    q.Get("startDate"),
		EndDate:      q.Get("endDate"),
		ChamberID:    q.Get("chamberId"),
		PatientName:  q.Get("patientName"),
		PatientEmail: q.Get("patientEmail"),
		Status:       q.Get("status"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.GetAll(r.Context(), &query)
	if err != nil {
		h.mapError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrChamberNotFound):
		response.NotFound(w, "Chamber not found")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, service.ErrWeekdayMismatch):
		response.Error(w, http.StatusBadRequest, "Weekday does not match the date", nil)
	case errors.Is(err, service.ErrInvalidDate):
		response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
	case errors.Is(err, service.ErrNoVisitingHours):
		response.Error(w, http.StatusBadRequest, "No visiting hours defined for the selected day", nil)
	case errors.Is(err, service.ErrDuplicateBooking):
		response.Conflict(w, "An appointment is already created with this email today with the same doctor and chamber")
	case errors.Is(err, service.ErrCapacityExceeded):
		response.Error(w, http.StatusBadRequest, "Maximum appointment limit reached for the selected doctor and chamber on this date", nil)
	case errors.Is(err, service.ErrCodeExpired):
		response.Error(w, http.StatusBadRequest, "Code expired", nil)
	case errors.Is(err, service.ErrInvalidStatus):
		response.UnprocessableEntity(w, "Invalid status")
	case errors.Is(err, service.ErrNotPermitted):
		response.Forbidden(w, "Only the doctor can complete an ongoing appointment")
	case errors.Is(err, usecase.ErrActorNotFound):
		response.Unauthorized(w, "")
	default:
		response.InternalServerError(w, "Failed to process appointment")
	}
}
