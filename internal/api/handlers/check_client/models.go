package check_client

import "github.com/m04kA/SMC-SchedulingService/internal/service/clients/models"

// CheckClientRequest HTTP request model
type CheckClientRequest struct {
	UnitID int64  `json:"unit_id" validate:"required,gt=0"`
	Phone  string `json:"phone" validate:"required,max=32"`
}

// CheckClientResponse HTTP response model
type CheckClientResponse struct {
	Success bool                   `json:"success"`
	Found   bool                   `json:"found"`
	Client  *models.ClientResponse `json:"client,omitempty"`
	Message string                 `json:"message,omitempty"`
}
