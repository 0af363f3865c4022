package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrUnitNotFound возвращается, когда подразделение не найдено
	ErrUnitNotFound = fmt.Errorf("%w: create_booking: unit not found", domain.ErrNotFound)

	// ErrStaffNotFound возвращается, когда ни один активный мастер не подходит под имя
	ErrStaffNotFound = fmt.Errorf("%w: create_booking: staff not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда ни одна активная услуга не подходит под название
	ErrServiceNotFound = fmt.Errorf("%w: create_booking: service not found", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другим бронированием мастера
	ErrSlotNotAvailable = fmt.Errorf("%w: create_booking: slot is not available", domain.ErrConflict)

	// ErrInvalidDateTime возвращается, когда время начала не удалось разобрать
	ErrInvalidDateTime = fmt.Errorf("%w: create_booking: invalid datetime", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrClientCreateFailed возвращается, когда не удалось сохранить клиента с телефоном
	ErrClientCreateFailed = fmt.Errorf("%w: create_booking: failed to resolve client", domain.ErrStore)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_booking: internal error", domain.ErrStore)
)
