package manage_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	Get(ctx context.Context, unitID, id int64) (*models.BookingResponse, error)
	Confirm(ctx context.Context, unitID, id int64) (*models.BookingResponse, error)
	Complete(ctx context.Context, unitID, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
