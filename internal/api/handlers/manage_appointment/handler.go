package manage_appointment

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnitNotFound       = "подразделение не найдено"
	msgNotFound           = "запись не найдена"
	msgInvalidTransition  = "нельзя изменить статус записи"
)

type operation func(ctx context.Context, unitID, id int64) (*models.BookingResponse, error)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet action get_appointment
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "get_appointment", h.service.Get)
}

// HandleConfirm action confirm_appointment
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "confirm_appointment", h.service.Confirm)
}

// HandleComplete action complete_appointment
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "complete_appointment", h.service.Complete)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, action string, op operation) {
	var req AppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", action, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	booking, err := op(r.Context(), req.UnitID, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnitNotFound):
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: unit_id=%d, appointment_id=%d", action, req.UnitID, req.AppointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("%s - Invalid transition: appointment_id=%d", action, req.AppointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			status := handlers.StatusFromError(err)
			if status == http.StatusInternalServerError {
				h.logger.Error("%s - Failed: appointment_id=%d, error=%v", action, req.AppointmentID, err)
				handlers.RespondInternalError(w)
				return
			}
			handlers.RespondError(w, status, err.Error())
		}
		return
	}

	h.logger.Info("%s - OK: appointment_id=%d, status=%s", action, booking.ID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, AppointmentResponse{
		Success:     true,
		Appointment: booking,
	})
}
