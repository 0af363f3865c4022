package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
)

// UseCase use case для получения доступных слотов
// Только чтение, блокировок не берёт: результат носит рекомендательный характер
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	unitRepo    UnitRepository
	days        DayResolver
	step        time.Duration
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// slotStepMinutes вне допустимого диапазона заменяется на шаг по умолчанию (30 минут)
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	unitRepo UnitRepository,
	days DayResolver,
	slotStepMinutes int,
	logger Logger,
) *UseCase {
	if slotStepMinutes < domain.MinSlotStepMinutes || slotStepMinutes > domain.MaxSlotStepMinutes {
		slotStepMinutes = domain.DefaultSlotStepMinutes
	}

	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		unitRepo:    unitRepo,
		days:        days,
		step:        time.Duration(slotStepMinutes) * time.Minute,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: unit=%d, date=%s, staffFilter=%q", req.UnitID, req.Date, req.StaffFilter)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем подразделение
	unit, err := uc.unitRepo.GetByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			uc.logger.Warn("GetAvailableSlots: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// 3. Полночь запрошенного дня по времени подразделения
	day, err := uc.days.Day(req.Date, unit.Timezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 4. Услуги подразделения
	services, err := uc.catalogRepo.ListActiveServices(ctx, req.UnitID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	response := &Response{
		Date:     day.Format(domain.DateFormat),
		Slots:    []Slot{},
		Services: toServices(services),
	}

	// 5. Мастера, опционально отфильтрованные по подстроке имени
	staff, err := uc.catalogRepo.ListActiveStaff(ctx, req.UnitID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	if filter := strings.TrimSpace(req.StaffFilter); filter != "" {
		staff = domain.FilterStaffByName(staff, filter)
	}

	if len(staff) == 0 {
		uc.logger.Info("GetAvailableSlots: no staff matches filter %q in unit=%d", req.StaffFilter, req.UnitID)
		response.NoStaff = true
		return response, nil
	}

	if !unit.HasValidHours() {
		uc.logger.Warn("GetAvailableSlots: unit id=%d has invalid hours %d-%d", unit.ID, unit.OpeningHour, unit.ClosingHour)
		return response, nil
	}

	// 6. Бронирования, пересекающие рабочий день
	grid := generateGrid(day, unit.OpeningHour, unit.ClosingHour, uc.step)
	if len(grid) == 0 {
		return response, nil
	}

	windowStart := grid[0]
	windowEnd := day.Add(time.Duration(unit.ClosingHour) * time.Hour)

	bookings, err := uc.bookingRepo.ListActiveByUnit(ctx, req.UnitID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Свободные слоты
	for _, slot := range collectAvailableSlots(grid, staff, bookings) {
		response.Slots = append(response.Slots, Slot{
			Time:      slot.TimeOfDay(),
			DateTime:  slot.StartTime,
			StaffID:   slot.StaffID,
			StaffName: slot.StaffName,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for %d staff in unit=%d on %s",
		len(response.Slots), len(staff), req.UnitID, response.Date)

	return response, nil
}

func toServices(services []*domain.Service) []Service {
	result := make([]Service, 0, len(services))
	for _, s := range services {
		result = append(result, Service{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}
