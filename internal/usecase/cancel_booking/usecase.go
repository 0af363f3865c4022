package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
)

// UseCase use case для отмены бронирования
// За один вызов отменяется ровно одно бронирование
type UseCase struct {
	bookingRepo  BookingRepository
	unitRepo     UnitRepository
	days         DayResolver
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	unitRepo UnitRepository,
	days DayResolver,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		unitRepo:     unitRepo,
		days:         days,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены
//
// С ID отменяется именно это бронирование. Без ID ищутся бронирования клиента
// по телефону (на указанную дату или начиная с текущего момента) и отменяется ближайшее
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	phone := domain.NormalizePhone(req.Phone)

	uc.logger.Info("CancelBooking: unit=%d, appointmentID=%v, date=%q, hasPhone=%t",
		req.UnitID, req.AppointmentID, req.Date, phone != "")

	// 1. Валидация входных данных
	if req.UnitID <= 0 {
		return nil, fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}
	if req.AppointmentID == nil && phone == "" {
		uc.logger.Warn("CancelBooking: neither appointment id nor phone given")
		return nil, ErrMissingIdentifier
	}
	if req.AppointmentID != nil && *req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	// 2. Получаем подразделение
	unit, err := uc.unitRepo.GetByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			uc.logger.Warn("CancelBooking: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("CancelBooking: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// 3. Фильтр поиска по телефону
	var filter domain.CancellableFilter
	mode := ModeByID
	if req.AppointmentID == nil {
		filter, mode, err = uc.buildFilter(req, unit, phone)
		if err != nil {
			return nil, err
		}
	}

	// 4. Поиск и отмена под блокировкой строк
	var cancelled *domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var target *domain.Booking

		if req.AppointmentID != nil {
			booking, err := uc.bookingRepo.GetByID(txCtx, req.UnitID, *req.AppointmentID)
			if err != nil {
				return err
			}
			if !booking.CanBeCancelled() {
				uc.logger.Warn("CancelBooking: booking id=%d has status=%s", booking.ID, booking.Status)
				return ErrAlreadyCancelled
			}
			target = booking
		} else {
			candidates, err := uc.bookingRepo.FindCancellable(txCtx, filter)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				if mode == ModeByDate {
					return ErrNoAppointmentForDate
				}
				return ErrNoFutureAppointment
			}
			// Отсортированы по началу: первое - ближайшее
			target = candidates[0]
		}

		if err := uc.bookingRepo.Cancel(txCtx, req.UnitID, target.ID); err != nil {
			return err
		}

		now := uc.timeProvider.Now()
		target.Status = domain.StatusCancelled
		target.CancelledAt = &now
		cancelled = target
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("CancelBooking: %v", err)
		return nil, err
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("CancelBooking: booking not found in unit=%d", req.UnitID)
		return nil, ErrBookingNotFound
	default:
		uc.logger.Error("CancelBooking: failed to cancel booking in unit=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCancelled(strconv.FormatInt(req.UnitID, 10), mode)
	uc.logger.Info("CancelBooking: cancelled booking id=%d (%s) starting at %s",
		cancelled.ID, mode, cancelled.StartTime.Format(domain.DateTimeDisplay))

	return &Response{
		Booking:  cancelled,
		Mode:     mode,
		Location: uc.days.Location(unit.Timezone),
	}, nil
}

// buildFilter окно поиска: весь указанный день подразделения или всё начиная с текущего момента
func (uc *UseCase) buildFilter(req *Request, unit *domain.Unit, phone string) (domain.CancellableFilter, string, error) {
	filter := domain.CancellableFilter{UnitID: req.UnitID, Phone: phone}

	if date := strings.TrimSpace(req.Date); date != "" {
		from, to, err := uc.days.DayBounds(date, unit.Timezone)
		if err != nil {
			uc.logger.Warn("CancelBooking: invalid date %q: %v", req.Date, err)
			return filter, "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		filter.From = &from
		filter.To = &to
		return filter, ModeByDate, nil
	}

	now := uc.timeProvider.Now()
	filter.From = &now
	return filter, ModeUpcoming, nil
}
