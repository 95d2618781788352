package service

import (
	"errors"

	"docconnect/internal/domain/entity"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotPermitted  = errors.New("role not permitted for this transition")
)

// TransitionIntent is what the actor wants to do with an appointment.
type TransitionIntent int

const (
	IntentAdvance TransitionIntent = iota
	IntentCancel
)

// NextStatus is the appointment state machine as a pure function.
//
//	requested -> verified -> queued -> ongoing -> completed
//
// with cancelled reachable from every non-terminal state. completed and
// cancelled are terminal. The ongoing -> completed advance is reserved
// for the doctor role; any other role gets ErrNotPermitted.
func NextStatus(current entity.AppointmentStatus, intent TransitionIntent, actor entity.Role) (entity.AppointmentStatus, error) {
	if !current.Valid() || current.IsTerminal() {
		return "", ErrInvalidStatus
	}

	if intent == IntentCancel {
		return entity.StatusCancelled, nil
	}

	switch current {
	case entity.StatusRequested:
		return entity.StatusVerified, nil
	case entity.StatusVerified:
		return entity.StatusQueued, nil
	case entity.StatusQueued:
		return entity.StatusOngoing, nil
	case entity.StatusOngoing:
		if actor != entity.RoleDoctor {
			return "", ErrNotPermitted
		}
		return entity.StatusCompleted, nil
	}

	return "", ErrInvalidStatus
}
