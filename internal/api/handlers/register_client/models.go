package register_client

import "github.com/m04kA/SMC-SchedulingService/internal/service/clients/models"

// RegisterClientRequest HTTP request model
type RegisterClientRequest struct {
	UnitID int64  `json:"unit_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=200"`
	Phone  string `json:"phone" validate:"required,max=32"`
}

// RegisterClientResponse HTTP response model
type RegisterClientResponse struct {
	Success bool                   `json:"success"`
	Client  *models.ClientResponse `json:"client"`
}
