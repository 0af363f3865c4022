package register_client

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ClientService interface {
	Register(ctx context.Context, unitID int64, name, phone string) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
