package register_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients"
	"github.com/m04kA/SMC-SchedulingService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите имя и корректный номер телефона"
	msgAlreadyRegistered  = "клиент с таким телефоном уже зарегистрирован"
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

// Handle action register_client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("register_client - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("register_client - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	client, err := h.service.Register(r.Context(), req.UnitID, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrAlreadyRegistered):
			h.logger.Warn("register_client - Already registered: unit_id=%d", req.UnitID)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("register_client - Failed to register: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("register_client - Client registered: client_id=%d, unit_id=%d", client.ID, req.UnitID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterClientResponse{
		Success: true,
		Client:  models.FromDomainClient(client),
	})
}
