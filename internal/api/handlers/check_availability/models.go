package check_availability

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	UnitID       int64  `json:"unit_id" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Professional string `json:"professional,omitempty" validate:"max=200"`
}

// SlotResponse свободный слот
type SlotResponse struct {
	Time       string `json:"time"`     // "HH:MM"
	DateTime   string `json:"datetime"` // RFC3339 со смещением подразделения
	BarberID   int64  `json:"barber_id"`
	BarberName string `json:"barber_name"`
}

// ServiceResponse услуга подразделения
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Success        bool              `json:"success"`
	Date           string            `json:"date"`
	AvailableSlots []SlotResponse    `json:"available_slots"`
	Services       []ServiceResponse `json:"services"`
	Message        string            `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		UnitID:      r.UnitID,
		Date:        r.Date,
		StaffFilter: r.Professional,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *CheckAvailabilityResponse {
	result := &CheckAvailabilityResponse{
		Success:        true,
		Date:           resp.Date,
		AvailableSlots: make([]SlotResponse, 0, len(resp.Slots)),
		Services:       make([]ServiceResponse, 0, len(resp.Services)),
	}

	for _, s := range resp.Slots {
		result.AvailableSlots = append(result.AvailableSlots, SlotResponse{
			Time:       s.Time,
			DateTime:   s.DateTime.Format(time.RFC3339),
			BarberID:   s.StaffID,
			BarberName: s.StaffName,
		})
	}

	for _, s := range resp.Services {
		result.Services = append(result.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return result
}
