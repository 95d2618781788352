package converter

import (
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ChamberToResponse converts a Chamber entity to ChamberResponse DTO
func ChamberToResponse(chamber *entity.Chamber) *dto.ChamberResponse {
	if chamber == nil {
		return nil
	}

	response := &dto.ChamberResponse{
		ID:            chamber.ID,
		Name:          chamber.Name,
		DoctorID:      chamber.DoctorID,
		Address:       chamber.Address,
		Contact:       chamber.Contact,
		Fee:           chamber.Fee,
		VisitingHours: visitingHoursToResponse(chamber.VisitingHours.Data()),
		Active:        chamber.IsActive(),
		CreatedAt:     chamber.CreatedAt,
		UpdatedAt:     chamber.UpdatedAt,
	}

	if chamber.Doctor.ID != uuid.Nil {
		response.DoctorName = chamber.Doctor.Name
	}

	return response
}

// ChambersToResponses converts a slice of Chamber entities to response DTOs
func ChambersToResponses(chambers []entity.Chamber) []dto.ChamberResponse {
	responses := make([]dto.ChamberResponse, len(chambers))
	for i, chamber := range chambers {
		resp := ChamberToResponse(&chamber)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// VisitingHoursFromRequest converts request windows to the domain map.
func VisitingHoursFromRequest(hours map[string]dto.VisitingHourRequest) entity.VisitingHours {
	result := make(entity.VisitingHours, len(hours))
	for day, hour := range hours {
		result[day] = entity.VisitingHour{
			Start:     hour.Start,
			End:       hour.End,
			NoOfSlots: hour.NoOfSlots,
		}
	}
	return result
}

func visitingHoursToResponse(hours entity.VisitingHours) map[string]dto.VisitingHourRequest {
	result := make(map[string]dto.VisitingHourRequest, len(hours))
	for day, hour := range hours {
		result[day] = dto.VisitingHourRequest{
			Start:     hour.Start,
			End:       hour.End,
			NoOfSlots: hour.NoOfSlots,
		}
	}
	return result
}
