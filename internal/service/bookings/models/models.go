package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingResponse представление бронирования во внешнем API
// Время начала и окончания выводится со смещением подразделения
type BookingResponse struct {
	ID          int64   `json:"id"`
	UnitID      int64   `json:"unit_id"`
	StaffID     int64   `json:"barber_id"`
	ServiceID   int64   `json:"service_id"`
	ClientID    *int64  `json:"client_id,omitempty"`
	ClientName  string  `json:"client_name"`
	ClientPhone *string `json:"client_phone,omitempty"`
	Barber      string  `json:"barber"`
	Service     string  `json:"service"`
	StartTime   string  `json:"start_time"` // RFC3339
	EndTime     string  `json:"end_time"`   // RFC3339
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UnitID:      b.UnitID,
		StaffID:     b.StaffID,
		ServiceID:   b.ServiceID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		Barber:      b.StaffName,
		Service:     b.ServiceName,
		StartTime:   b.StartTime.In(loc).Format(time.RFC3339),
		EndTime:     b.EndTime.In(loc).Format(time.RFC3339),
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		Notes:       b.Notes,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.In(loc).Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
