package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a reserved interval [StartTime, EndTime) of one staff member
type Booking struct {
	ID        int64
	UnitID    int64
	StaffID   int64
	ServiceID int64
	ClientID  *int64 // NULL, если клиента не удалось сохранить
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	// Denormalized data for history
	ClientName  string
	ClientPhone *string // только цифры
	StaffName   string
	ServiceName string
	TotalPrice  float64
	Notes       *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still occupies its interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking is waiting for confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be marked as completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end) и [b.StartTime, b.EndTime)
// Граничащие интервалы (10:00-10:30 и 10:30-11:00) не пересекаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// Covers проверяет, что момент t попадает в [StartTime, EndTime)
func (b *Booking) Covers(t time.Time) bool {
	return !t.Before(b.StartTime) && t.Before(b.EndTime)
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// CancellableFilter фильтр поиска бронирования для отмены по телефону
type CancellableFilter struct {
	UnitID int64
	Phone  string     // только цифры
	From   *time.Time // начало окна (включительно)
	To     *time.Time // конец окна (не включительно), nil - без ограничения
}
