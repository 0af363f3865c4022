package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, unitID, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, unitID, id int64, from []domain.BookingStatus, to domain.BookingStatus) error
}

// UnitRepository интерфейс репозитория подразделений
type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

// ZoneResolver возвращает фиксированную зону подразделения для форматирования времени
type ZoneResolver interface {
	Location(zone string) *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
