package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveByStaff(ctx context.Context, staffID int64, start, end time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	ListActiveStaff(ctx context.Context, unitID int64) ([]*domain.Staff, error)
	ListActiveServices(ctx context.Context, unitID int64) ([]*domain.Service, error)
	LockStaff(ctx context.Context, unitID, staffID int64) error
}

// UnitRepository интерфейс репозитория подразделений
type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

// ClientResolver находит или создает клиента
type ClientResolver interface {
	Resolve(ctx context.Context, req clients.ResolveRequest) (*domain.Client, bool, error)
}

// TimestampNormalizer приводит время из запроса к абсолютному моменту
type TimestampNormalizer interface {
	Normalize(raw, zone string) (time.Time, error)
	Location(zone string) *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики бронирований
type Metrics interface {
	IncBookingsCreated(unit string)
	IncBookingConflicts(unit string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
