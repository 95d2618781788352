package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/usecase"
	"docconnect/pkg/response"
	"docconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ChamberHandler struct {
	chamberUsecase usecase.ChamberUsecase
	validator      *validator.CustomValidator
}

func NewChamberHandler(chamberUsecase usecase.ChamberUsecase, validator *validator.CustomValidator) *ChamberHandler {
	return &ChamberHandler{
		chamberUsecase: chamberUsecase,
		validator:      validator,
	}
}

// Create registers a new chamber for a doctor
// @Summary Create a chamber
// @Tags Chambers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateChamberRequest true "Create Chamber Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chambers [post]
func (h *ChamberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChamberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	chamber, err := h.chamberUsecase.CreateChamber(r.Context(), &req)
	if err != nil {
		h.mapError(w, err, "Failed to create chamber")
		return
	}

	response.Success(w, http.StatusCreated, "Chamber created successfully", chamber)
}

// Get returns a single chamber
// @Summary Get chamber by ID
// @Tags Chambers
// @Produce json
// @Param id path string true "Chamber ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chambers/{id} [get]
func (h *ChamberHandler) Get(w http.ResponseWriter, r *http.Request) {
	chamberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chamber ID", nil)
		return
	}

	chamber, err := h.chamberUsecase.GetChamber(r.Context(), chamberID)
	if err != nil {
		h.mapError(w, err, "Failed to get chamber")
		return
	}

	response.Success(w, http.StatusOK, "Chamber retrieved successfully", chamber)
}

// GetAll lists active chambers
// @Summary List active chambers
// @Tags Chambers
// @Produce json
// @Success 200 {object} response.Response
// @Router /chambers [get]
func (h *ChamberHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	chambers, err := h.chamberUsecase.GetActiveChambers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list chambers")
		return
	}

	response.Success(w, http.StatusOK, "Chambers retrieved successfully", chambers)
}

// Update modifies a chamber
// @Summary Update a chamber
// @Tags Chambers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Chamber ID"
// @Param request body dto.UpdateChamberRequest true "Update Chamber Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chambers/{id} [put]
func (h *ChamberHandler) Update(w http.ResponseWriter, r *http.Request) {
	chamberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chamber ID", nil)
		return
	}

	var req dto.UpdateChamberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	chamber, err := h.chamberUsecase.UpdateChamber(r.Context(), chamberID, &req)
	if err != nil {
		h.mapError(w, err, "Failed to update chamber")
		return
	}

	response.Success(w, http.StatusOK, "Chamber updated successfully", chamber)
}

// Deactivate soft-disables a chamber
// @Summary Deactivate a chamber
// @Tags Chambers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Chamber ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chambers/{id} [delete]
func (h *ChamberHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	chamberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chamber ID", nil)
		return
	}

	if err := h.chamberUsecase.DeactivateChamber(r.Context(), chamberID); err != nil {
		h.mapError(w, err, "Failed to deactivate chamber")
		return
	}

	response.Success(w, http.StatusOK, "Chamber deactivated successfully", nil)
}

func (h *ChamberHandler) mapError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrChamberNotFound):
		response.NotFound(w, "Chamber not found")
	case errors.Is(err, usecase.ErrChamberNotOwned):
		response.Forbidden(w, "Chamber does not belong to you")
	default:
		response.InternalServerError(w, fallback)
	}
}
