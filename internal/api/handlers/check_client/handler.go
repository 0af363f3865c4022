package check_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
	msgClientNotFound     = "клиент с таким телефоном не найден"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle action check_client
// Отсутствие клиента - не ошибка: ответ 200 с found=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("check_client - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("check_client - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	client, err := h.service.FindByPhone(r.Context(), req.UnitID, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Info("check_client - Client not found: unit_id=%d", req.UnitID)
			handlers.RespondJSON(w, http.StatusOK, CheckClientResponse{
				Success: true,
				Found:   false,
				Message: msgClientNotFound,
			})

		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		default:
			h.logger.Error("check_client - Failed to find client: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("check_client - Client found: client_id=%d, unit_id=%d", client.ID, req.UnitID)
	handlers.RespondJSON(w, http.StatusOK, CheckClientResponse{
		Success: true,
		Found:   true,
		Client:  models.FromDomainClient(client),
	})
}
