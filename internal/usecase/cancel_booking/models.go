package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Способ, которым найдено отменяемое бронирование
const (
	ModeByID     = "id"
	ModeByDate   = "phone_date"
	ModeUpcoming = "phone_upcoming"
)

// Request модель запроса на отмену
// Либо AppointmentID, либо Phone (с необязательной датой)
type Request struct {
	UnitID        int64
	AppointmentID *int64
	Phone         string // в любом формате, нормализуется до цифр
	Date          string // YYYY-MM-DD, локальная дата подразделения (опционально)
}

// Response модель ответа с отменённым бронированием
type Response struct {
	Booking  *domain.Booking
	Mode     string
	Location *time.Location
}
