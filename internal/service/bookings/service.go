package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и смены их статуса
// Создание и отмена вынесены в отдельные use case
type Service struct {
	bookingRepo BookingRepository
	unitRepo    UnitRepository
	zones       ZoneResolver
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	unitRepo UnitRepository,
	zones ZoneResolver,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		unitRepo:    unitRepo,
		zones:       zones,
		txManager:   txManager,
		logger:      logger,
	}
}

// Get получает бронирование подразделения по ID
func (s *Service) Get(ctx context.Context, unitID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Get: fetching booking id=%d for unit=%d", id, unitID)

	if unitID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: unitID and id must be positive", ErrInvalidInput)
	}

	unit, err := s.getUnit(ctx, "Get", unitID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, unitID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Get: booking id=%d not found in unit=%d", id, unitID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.zones.Location(unit.Timezone)), nil
}

// Confirm переводит бронирование из pending в confirmed
func (s *Service) Confirm(ctx context.Context, unitID, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, "Confirm", unitID, id, []domain.BookingStatus{domain.StatusPending}, domain.StatusConfirmed)
}

// Complete переводит бронирование из pending или confirmed в completed
func (s *Service) Complete(ctx context.Context, unitID, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, "Complete", unitID, id, domain.CancellableStatuses, domain.StatusCompleted)
}

// transition меняет статус под блокировкой строки бронирования
func (s *Service) transition(
	ctx context.Context,
	op string,
	unitID, id int64,
	from []domain.BookingStatus,
	to domain.BookingStatus,
) (*models.BookingResponse, error) {
	s.logger.Info("%s: booking id=%d unit=%d -> %s", op, id, unitID, to)

	if unitID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: unitID and id must be positive", ErrInvalidInput)
	}

	unit, err := s.getUnit(ctx, op, unitID)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, unitID, id)
		if err != nil {
			return err
		}

		if !statusIn(booking.Status, from) {
			s.logger.Warn("%s: booking id=%d has status=%s, cannot move to %s", op, id, booking.Status, to)
			return errTransition
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, unitID, id, from, to); err != nil {
			return err
		}

		booking.Status = to
		result = booking
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errTransition):
		return nil, ErrInvalidTransition
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found in unit=%d", op, id, unitID)
		return nil, ErrBookingNotFound
	default:
		s.logger.Error("%s: failed to update booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: booking id=%d is now %s", op, id, to)
	return models.FromDomainBooking(result, s.zones.Location(unit.Timezone)), nil
}

func (s *Service) getUnit(ctx context.Context, op string, unitID int64) (*domain.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			s.logger.Warn("%s: unit id=%d not found", op, unitID)
			return nil, ErrUnitNotFound
		}
		s.logger.Error("%s: failed to get unit id=%d: %v", op, unitID, err)
		return nil, fmt.Errorf("%w: %s - get unit: %v", ErrInternal, op, err)
	}
	return unit, nil
}

func statusIn(status domain.BookingStatus, statuses []domain.BookingStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
