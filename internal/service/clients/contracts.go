package clients

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByPhone(ctx context.Context, unitID int64, phone string) (*domain.Client, error)
	FindByName(ctx context.Context, unitID int64, name string, birthDate *time.Time) (*domain.Client, error)
	Update(ctx context.Context, id int64, update domain.ClientUpdate) error
}

// Metrics счётчики клиентов
type Metrics interface {
	IncClientsCreated(unit string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
