package service

import (
	"errors"
	"testing"

	"docconnect/internal/domain/entity"
)

func TestNextStatus_AdvancePath(t *testing.T) {
	steps := []struct {
		from entity.AppointmentStatus
		want entity.AppointmentStatus
	}{
		{entity.StatusRequested, entity.StatusVerified},
		{entity.StatusVerified, entity.StatusQueued},
		{entity.StatusQueued, entity.StatusOngoing},
	}

	for _, step := range steps {
		got, err := NextStatus(step.from, IntentAdvance, entity.RoleAssistant)
		if err != nil {
			t.Fatalf("advance from %s: unexpected error %v", step.from, err)
		}
		if got != step.want {
			t.Errorf("advance from %s: got %s, want %s", step.from, got, step.want)
		}
	}
}

func TestNextStatus_CompleteRequiresDoctor(t *testing.T) {
	got, err := NextStatus(entity.StatusOngoing, IntentAdvance, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("doctor completing ongoing: unexpected error %v", err)
	}
	if got != entity.StatusCompleted {
		t.Errorf("got %s, want %s", got, entity.StatusCompleted)
	}

	for _, role := range []entity.Role{entity.RoleAssistant, entity.RoleAdmin, ""} {
		_, err := NextStatus(entity.StatusOngoing, IntentAdvance, role)
		if !errors.Is(err, ErrNotPermitted) {
			t.Errorf("role %q completing ongoing: got %v, want ErrNotPermitted", role, err)
		}
	}
}

func TestNextStatus_CancelFromNonTerminal(t *testing.T) {
	for _, from := range []entity.AppointmentStatus{
		entity.StatusRequested,
		entity.StatusVerified,
		entity.StatusQueued,
		entity.StatusOngoing,
	} {
		got, err := NextStatus(from, IntentCancel, entity.RoleAssistant)
		if err != nil {
			t.Fatalf("cancel from %s: unexpected error %v", from, err)
		}
		if got != entity.StatusCancelled {
			t.Errorf("cancel from %s: got %s, want cancelled", from, got)
		}
	}
}

func TestNextStatus_TerminalStates(t *testing.T) {
	for _, from := range []entity.AppointmentStatus{entity.StatusCompleted, entity.StatusCancelled} {
		for _, intent := range []TransitionIntent{IntentAdvance, IntentCancel} {
			_, err := NextStatus(from, intent, entity.RoleDoctor)
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("transition from terminal %s: got %v, want ErrInvalidStatus", from, err)
			}
		}
	}
}

func TestNextStatus_UnknownStatus(t *testing.T) {
	_, err := NextStatus("pending", IntentAdvance, entity.RoleDoctor)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}
}
