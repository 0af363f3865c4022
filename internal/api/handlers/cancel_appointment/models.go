package cancel_appointment

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	cancelBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_booking"
)

// CancelAppointmentRequest HTTP request model
// Нужен appointment_id либо phone (дата необязательна)
type CancelAppointmentRequest struct {
	UnitID        int64  `json:"unit_id" validate:"required,gt=0"`
	AppointmentID *int64 `json:"appointment_id,omitempty" validate:"omitempty,gt=0"`
	Phone         string `json:"phone,omitempty" validate:"required_without=AppointmentID,max=32"`
	Date          string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	Success     bool                    `json:"success"`
	Appointment *models.BookingResponse `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelAppointmentRequest) ToUseCaseRequest() *cancelBooking.Request {
	return &cancelBooking.Request{
		UnitID:        r.UnitID,
		AppointmentID: r.AppointmentID,
		Phone:         r.Phone,
		Date:          r.Date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		Success:     true,
		Appointment: models.FromDomainBooking(resp.Booking, resp.Location),
	}
}
