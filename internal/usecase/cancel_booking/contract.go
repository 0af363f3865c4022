package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, unitID, id int64) (*domain.Booking, error)
	FindCancellable(ctx context.Context, filter domain.CancellableFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, unitID, id int64) error
}

// UnitRepository интерфейс репозитория подразделений
type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

// DayResolver границы календарного дня и зона подразделения
type DayResolver interface {
	DayBounds(date, zone string) (time.Time, time.Time, error)
	Location(zone string) *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик отмен
type Metrics interface {
	IncBookingsCancelled(unit, mode string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
