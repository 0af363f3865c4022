package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
// Единственное место, где создаются бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	unitRepo       UnitRepository
	clientResolver ClientResolver
	normalizer     TimestampNormalizer
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	unitRepo UnitRepository,
	clientResolver ClientResolver,
	normalizer TimestampNormalizer,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		unitRepo:       unitRepo,
		clientResolver: clientResolver,
		normalizer:     normalizer,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка пересечений и вставка выполняются в одной SERIALIZABLE транзакции
// под блокировкой строки мастера, поэтому два пересекающихся бронирования
// одного мастера не могут быть зафиксированы одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: unit=%d, staff=%q, service=%q, datetime=%q",
		req.UnitID, req.StaffName, req.ServiceName, req.DateTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем подразделение
	unit, err := uc.unitRepo.GetByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			uc.logger.Warn("CreateBooking: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("CreateBooking: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// 3. Время начала в UTC
	start, err := uc.normalizer.Normalize(req.DateTime, unit.Timezone)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid datetime %q: %v", req.DateTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	// 4. Мастер и услуга: первое совпадение в порядке справочника
	staff, service, err := uc.resolveCatalog(ctx, req)
	if err != nil {
		return nil, err
	}

	end := start.Add(service.Duration())

	// 5. Клиент
	response := &Response{Location: uc.normalizer.Location(unit.Timezone)}
	phone := domain.NormalizePhone(req.ClientPhone)

	client, created, err := uc.clientResolver.Resolve(ctx, clients.ResolveRequest{
		UnitID:    req.UnitID,
		Name:      req.ClientName,
		Phone:     phone,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
		Tags:      req.Tags,
	})
	switch {
	case err == nil:
		response.Client = client
		response.ClientCreated = created
	case phone != "":
		uc.logger.Error("CreateBooking: failed to resolve client with phone in unit=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: %v", ErrClientCreateFailed, err)
	default:
		// Без телефона бронирование создаётся по снимку имени
		uc.logger.Warn("CreateBooking: client %q not saved, booking continues: %v", req.ClientName, err)
		response.ClientWarning = err.Error()
	}

	booking := &domain.Booking{
		UnitID:      req.UnitID,
		StaffID:     staff.ID,
		ServiceID:   service.ID,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusPending,
		ClientName:  strings.TrimSpace(req.ClientName),
		StaffName:   staff.Name,
		ServiceName: service.Name,
		TotalPrice:  service.Price,
		Notes:       req.Notes,
	}
	if phone != "" {
		booking.ClientPhone = ptr.Ptr(phone)
	}
	if client != nil {
		booking.ClientID = ptr.Ptr(client.ID)
	}

	// 6. Проверка пересечений и вставка атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Очередь на строке мастера
		if err := uc.catalogRepo.LockStaff(txCtx, req.UnitID, staff.ID); err != nil {
			return err
		}

		// 6.2. Неотменённые бронирования мастера, пересекающие [start, end)
		overlapping, err := uc.bookingRepo.ListActiveByStaff(txCtx, staff.ID, start, end)
		if err != nil {
			return err
		}

		for _, existing := range overlapping {
			if existing.IsActive() && existing.Overlaps(start, end) {
				uc.logger.Warn("CreateBooking: staff id=%d busy, overlaps booking id=%d (%s - %s)",
					staff.ID, existing.ID,
					existing.StartTime.Format(domain.DateTimeDisplay), existing.EndTime.Format(domain.DateTimeDisplay))
				return bookingRepo.ErrSlotNotAvailable
			}
		}

		// 6.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		booking = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(req.UnitID, staff.ID, err)
	}

	uc.metrics.IncBookingsCreated(unitLabel(req.UnitID))
	uc.logger.Info("CreateBooking: successfully created booking id=%d for staff id=%d at %s",
		booking.ID, staff.ID, booking.StartTime.Format(domain.DateTimeDisplay))

	response.Booking = booking
	return response, nil
}

// resolveCatalog находит мастера и услугу по имени
func (uc *UseCase) resolveCatalog(ctx context.Context, req *Request) (*domain.Staff, *domain.Service, error) {
	staffList, err := uc.catalogRepo.ListActiveStaff(ctx, req.UnitID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list staff: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	staff := domain.FirstStaffByName(staffList, req.StaffName)
	if staff == nil {
		uc.logger.Warn("CreateBooking: no active staff matches %q in unit=%d", req.StaffName, req.UnitID)
		return nil, nil, ErrStaffNotFound
	}

	services, err := uc.catalogRepo.ListActiveServices(ctx, req.UnitID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list services: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	service := domain.FirstServiceByName(services, req.ServiceName)
	if service == nil {
		uc.logger.Warn("CreateBooking: no active service matches %q in unit=%d", req.ServiceName, req.UnitID)
		return nil, nil, ErrServiceNotFound
	}

	return staff, service, nil
}

// mapTxError переводит ошибки транзакции в ошибки use case
// Ограничение bookings_no_overlap и проигрыш сериализации означают занятый слот
func (uc *UseCase) mapTxError(unitID, staffID int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrSlotNotAvailable), txmanager.IsSerializationFailure(err):
		uc.metrics.IncBookingConflicts(unitLabel(unitID))
		uc.logger.Warn("CreateBooking: slot not available for staff id=%d: %v", staffID, err)
		return ErrSlotNotAvailable
	case errors.Is(err, catalogRepo.ErrStaffNotFound):
		uc.logger.Warn("CreateBooking: staff id=%d disappeared before lock", staffID)
		return ErrStaffNotFound
	default:
		uc.logger.Error("CreateBooking: failed to create booking for staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}

func unitLabel(unitID int64) string {
	return strconv.FormatInt(unitID, 10)
}
