package check_client

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ClientService interface {
	FindByPhone(ctx context.Context, unitID int64, phone string) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
