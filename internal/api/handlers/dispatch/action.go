package dispatch

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Action каноническое имя действия
type Action string

const (
	ActionCheckAvailability   Action = "check_availability"
	ActionScheduleAppointment Action = "schedule_appointment"
	ActionCancelAppointment   Action = "cancel_appointment"
	ActionCheckClient         Action = "check_client"
	ActionRegisterClient      Action = "register_client"
	ActionGetAppointment      Action = "get_appointment"
	ActionConfirmAppointment  Action = "confirm_appointment"
	ActionCompleteAppointment Action = "complete_appointment"
)

var (
	// ErrMissingAction возвращается, когда поле action не передано
	ErrMissingAction = fmt.Errorf("%w: dispatch: action is required", domain.ErrValidation)

	// ErrUnknownAction возвращается для неизвестного действия
	ErrUnknownAction = fmt.Errorf("%w: dispatch: unknown action", domain.ErrValidation)
)

// короткие синонимы
var aliases = map[string]Action{
	"check":  ActionCheckAvailability,
	"create": ActionScheduleAppointment,
	"cancel": ActionCancelAppointment,
}

var known = map[Action]struct{}{
	ActionCheckAvailability:   {},
	ActionScheduleAppointment: {},
	ActionCancelAppointment:   {},
	ActionCheckClient:         {},
	ActionRegisterClient:      {},
	ActionGetAppointment:      {},
	ActionConfirmAppointment:  {},
	ActionCompleteAppointment: {},
}

// ParseAction приводит имя действия или его синоним к Action
func ParseAction(raw string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", ErrMissingAction
	}

	if action, ok := aliases[name]; ok {
		return action, nil
	}

	action := Action(name)
	if _, ok := known[action]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
	}

	return action, nil
}
