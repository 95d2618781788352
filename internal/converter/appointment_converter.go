package converter

import (
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		DoctorID:         appointment.DoctorID,
		ChamberID:        appointment.ChamberID,
		PatientName:      appointment.PatientName,
		PatientEmail:     appointment.PatientEmail,
		Date:             appointment.Date,
		Weekday:          appointment.Weekday,
		Time:             appointment.Time,
		VerificationCode: appointment.VerificationCode,
		SerialNo:         appointment.SerialNo,
		Status:           string(appointment.Status),
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			// Staff listings never expose verification codes.
			resp.VerificationCode = ""
			responses[i] = *resp
		}
	}
	return responses
}
