package clients

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: clients.service: invalid input data", domain.ErrValidation)

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("%w: clients.service: client not found", domain.ErrNotFound)

	// ErrAlreadyRegistered возвращается, когда клиент с таким телефоном уже существует
	ErrAlreadyRegistered = fmt.Errorf("%w: clients.service: client already registered", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: clients.service: internal error", domain.ErrStore)
)
