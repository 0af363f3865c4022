package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingIdentifier    = "укажите appointment_id или телефон клиента"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnitNotFound         = "подразделение не найдено"
	msgNotFound             = "запись не найдена"
	msgAlreadyCancelled     = "запись уже отменена или завершена"
	msgNoAppointmentForDate = "на указанную дату записей не найдено"
	msgNoFutureAppointment  = "предстоящих записей не найдено"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle action cancel_appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("cancel_appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("cancel_appointment - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrMissingIdentifier):
			handlers.RespondBadRequest(w, msgMissingIdentifier)

		case errors.Is(err, cancelBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, cancelBooking.ErrUnitNotFound):
			h.logger.Warn("cancel_appointment - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, cancelBooking.ErrAlreadyCancelled):
			h.logger.Warn("cancel_appointment - Already cancelled: unit_id=%d, appointment_id=%v", req.UnitID, req.AppointmentID)
			handlers.RespondNotFound(w, msgAlreadyCancelled)

		case errors.Is(err, cancelBooking.ErrNoAppointmentForDate):
			h.logger.Warn("cancel_appointment - No appointment for date: unit_id=%d, date=%s", req.UnitID, req.Date)
			handlers.RespondNotFound(w, msgNoAppointmentForDate)

		case errors.Is(err, cancelBooking.ErrNoFutureAppointment):
			h.logger.Warn("cancel_appointment - No future appointment: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgNoFutureAppointment)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("cancel_appointment - Booking not found: unit_id=%d, appointment_id=%v", req.UnitID, req.AppointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("cancel_appointment - Failed to cancel: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("cancel_appointment - Booking cancelled: booking_id=%d, unit_id=%d, mode=%s",
		result.Booking.ID, req.UnitID, result.Mode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
