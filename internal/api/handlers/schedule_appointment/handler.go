package schedule_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBirthDate   = "некорректный формат даты рождения, ожидается YYYY-MM-DD"
	msgInvalidDateTime    = "некорректные дата и время записи"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgUnitNotFound       = "подразделение не найдено"
	msgStaffNotFound      = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgClientFailed       = "не удалось сохранить клиента"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle action schedule_appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("schedule_appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("schedule_appointment - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("schedule_appointment - Invalid birth date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBirthDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("schedule_appointment - Slot not available: unit_id=%d, barber=%q, datetime=%s",
				req.UnitID, req.Barber, req.DateTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("schedule_appointment - Staff not found: unit_id=%d, barber=%q", req.UnitID, req.Barber)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("schedule_appointment - Service not found: unit_id=%d, service=%q", req.UnitID, req.Service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrUnitNotFound):
			h.logger.Warn("schedule_appointment - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateTime):
			h.logger.Warn("schedule_appointment - Invalid datetime: %q", req.DateTime)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrClientCreateFailed):
			h.logger.Error("schedule_appointment - Client not saved: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgClientFailed)

		default:
			h.logger.Error("schedule_appointment - Failed to create booking: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("schedule_appointment - Booking created: booking_id=%d, unit_id=%d",
		result.Booking.ID, req.UnitID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
