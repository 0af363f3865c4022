package manage_appointment

import "github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"

// AppointmentRequest HTTP request model для get/confirm/complete
type AppointmentRequest struct {
	UnitID        int64 `json:"unit_id" validate:"required,gt=0"`
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Success     bool                    `json:"success"`
	Appointment *models.BookingResponse `json:"appointment"`
}
