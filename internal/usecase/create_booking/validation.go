package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	required := []struct {
		field string
		value string
	}{
		{"clientName", req.ClientName},
		{"staffName", req.StaffName},
		{"serviceName", req.ServiceName},
		{"datetime", req.DateTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, r.field)
		}
	}

	if utf8.RuneCountInString(req.ClientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if len(req.Tags) > domain.MaxTags {
		return fmt.Errorf("%w: no more than %d tags allowed", ErrInvalidInput, domain.MaxTags)
	}

	return nil
}
