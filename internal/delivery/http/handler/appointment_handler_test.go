package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/service"
	"docconnect/internal/usecase"
	"docconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase returns canned results per call.
type stubAppointmentUsecase struct {
	resp *dto.AppointmentResponse
	list *dto.AppointmentListResponse
	err  error
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.resp, s.err
}

func (s *stubAppointmentUsecase) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.AppointmentResponse, error) {
	return s.resp, s.err
}

func (s *stubAppointmentUsecase) ResendCode(ctx context.Context, req *dto.ResendCodeRequest) (*dto.AppointmentResponse, error) {
	return s.resp, s.err
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error) {
	return s.resp, s.err
}

func (s *stubAppointmentUsecase) GetAll(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	return s.list, s.err
}

func validCreateBody() []byte {
	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		PatientName:  "Rahim Uddin",
		PatientEmail: "rahim@example.com",
		DoctorID:     uuid.NewString(),
		ChamberID:    uuid.NewString(),
		Date:         "2025-06-02",
		Weekday:      "monday",
	})
	return body
}

func postCreate(t *testing.T, uc usecase.AppointmentUsecase, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	h := NewAppointmentHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubAppointmentUsecase{resp: &dto.AppointmentResponse{ID: uuid.New(), Status: "requested"}}

	rec := postCreate(t, stub, validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body["success"] != true {
		t.Errorf("expected success=true, got %v", body["success"])
	}
}

func TestCreateHandler_ValidationFailure(t *testing.T) {
	stub := &stubAppointmentUsecase{}

	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		PatientName:  "Rahim Uddin",
		PatientEmail: "not-an-email",
		DoctorID:     "not-a-uuid",
		ChamberID:    uuid.NewString(),
		Date:         "2025-06-02",
		Weekday:      "funday",
	})

	rec := postCreate(t, stub, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rec.Code)
	}
}

func TestCreateHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"doctor not found", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"chamber not found", usecase.ErrChamberNotFound, http.StatusNotFound},
		{"weekday mismatch", service.ErrWeekdayMismatch, http.StatusBadRequest},
		{"closed day", service.ErrNoVisitingHours, http.StatusBadRequest},
		{"duplicate booking", service.ErrDuplicateBooking, http.StatusConflict},
		{"capacity reached", service.ErrCapacityExceeded, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postCreate(t, &stubAppointmentUsecase{err: tc.err}, validCreateBody())
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestVerifyCodeHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"expired", service.ErrCodeExpired, http.StatusBadRequest},
		{"capacity reached", service.ErrCapacityExceeded, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{err: tc.err}, validator.NewValidator())

			body, _ := json.Marshal(dto.VerifyCodeRequest{
				Code:          "A1B2C3D4",
				CurrentTime:   "2025-06-02T10:00:00Z",
				AppointmentID: uuid.NewString(),
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/verify-code", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			h.VerifyCode(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestUpdateStatusHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid transition", service.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{"not permitted", service.ErrNotPermitted, http.StatusForbidden},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{err: tc.err}, validator.NewValidator())

			cancel := 0
			body, _ := json.Marshal(dto.UpdateStatusRequest{Cancel: &cancel})
			req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/update-status/"+uuid.NewString(), bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.UpdateStatus(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestUpdateStatusHandler_InvalidID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	cancel := 0
	body, _ := json.Marshal(dto.UpdateStatusRequest{Cancel: &cancel})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/update-status/abc", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestGetAllHandler(t *testing.T) {
	stub := &stubAppointmentUsecase{list: &dto.AppointmentListResponse{
		Appointments: []dto.AppointmentResponse{{ID: uuid.New()}},
		Total:        1,
	}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=verified", nil)
	rec := httptest.NewRecorder()
	h.GetAll(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestGetAllHandler_BadStatusFilter(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=pending", nil)
	rec := httptest.NewRecorder()
	h.GetAll(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rec.Code)
	}
}
