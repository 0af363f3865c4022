package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: bookings.service: booking not found", domain.ErrNotFound)

	// ErrUnitNotFound возвращается, когда подразделение не найдено
	ErrUnitNotFound = fmt.Errorf("%w: bookings.service: unit not found", domain.ErrNotFound)

	// ErrInvalidTransition возвращается, когда переход статуса недопустим
	ErrInvalidTransition = fmt.Errorf("%w: bookings.service: invalid status transition", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: bookings.service: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: bookings.service: internal error", domain.ErrStore)
)

// errTransition внутренний маркер для выхода из транзакции
var errTransition = errors.New("transition rejected")
