package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListActiveByUnit получает неотменённые бронирования подразделения, пересекающие [start, end)
	ListActiveByUnit(ctx context.Context, unitID int64, start, end time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	ListActiveStaff(ctx context.Context, unitID int64) ([]*domain.Staff, error)
	ListActiveServices(ctx context.Context, unitID int64) ([]*domain.Service, error)
}

// UnitRepository интерфейс репозитория подразделений
type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

// DayResolver переводит календарную дату в полночь по времени подразделения
type DayResolver interface {
	Day(date, zone string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
