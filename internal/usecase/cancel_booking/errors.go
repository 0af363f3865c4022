package cancel_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrMissingIdentifier возвращается, когда нет ни ID бронирования, ни телефона
	ErrMissingIdentifier = fmt.Errorf("%w: cancel_booking: appointment id or phone is required", domain.ErrValidation)

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = fmt.Errorf("%w: cancel_booking: invalid date", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: cancel_booking: invalid input data", domain.ErrValidation)

	// ErrUnitNotFound возвращается, когда подразделение не найдено
	ErrUnitNotFound = fmt.Errorf("%w: cancel_booking: unit not found", domain.ErrNotFound)

	// ErrBookingNotFound возвращается, когда подходящее бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: cancel_booking: booking not found", domain.ErrNotFound)

	// ErrAlreadyCancelled возвращается, когда бронирование уже отменено или завершено
	ErrAlreadyCancelled = fmt.Errorf("%w: booking is already cancelled or completed", ErrBookingNotFound)

	// ErrNoAppointmentForDate возвращается, когда на указанную дату нет активных бронирований
	ErrNoAppointmentForDate = fmt.Errorf("%w: no appointment for the date", ErrBookingNotFound)

	// ErrNoFutureAppointment возвращается, когда у клиента нет будущих бронирований
	ErrNoFutureAppointment = fmt.Errorf("%w: no future appointment", ErrBookingNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: cancel_booking: internal error", domain.ErrStore)
)
