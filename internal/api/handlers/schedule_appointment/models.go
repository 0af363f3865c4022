package schedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	clientModels "github.com/m04kA/SMC-SchedulingService/internal/service/clients/models"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// ScheduleAppointmentRequest HTTP request model
type ScheduleAppointmentRequest struct {
	UnitID     int64    `json:"unit_id" validate:"required,gt=0"`
	ClientName string   `json:"client_name" validate:"required,max=200"`
	Phone      string   `json:"phone,omitempty" validate:"max=32"`
	BirthDate  string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes      *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Tags       []string `json:"tags,omitempty" validate:"max=50"`
	Barber     string   `json:"barber" validate:"required,max=200"`
	Service    string   `json:"service" validate:"required,max=200"`
	DateTime   string   `json:"datetime" validate:"required"`
}

// ScheduleAppointmentResponse HTTP response model
type ScheduleAppointmentResponse struct {
	Success       bool                         `json:"success"`
	Client        *clientModels.ClientResponse `json:"client,omitempty"`
	ClientCreated bool                         `json:"client_created"`
	ClientWarning string                       `json:"client_warning,omitempty"`
	Appointment   *models.BookingResponse      `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleAppointmentRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		UnitID:      r.UnitID,
		StaffName:   r.Barber,
		ServiceName: r.Service,
		ClientName:  r.ClientName,
		ClientPhone: r.Phone,
		Notes:       r.Notes,
		Tags:        r.Tags,
		DateTime:    r.DateTime,
	}

	if r.BirthDate != "" {
		birthDate, err := time.Parse(domain.DateFormat, r.BirthDate)
		if err != nil {
			return nil, err
		}
		req.BirthDate = &birthDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ScheduleAppointmentResponse {
	return &ScheduleAppointmentResponse{
		Success:       true,
		Client:        clientModels.FromDomainClient(resp.Client),
		ClientCreated: resp.ClientCreated,
		ClientWarning: resp.ClientWarning,
		Appointment:   models.FromDomainBooking(resp.Booking, resp.Location),
	}
}
