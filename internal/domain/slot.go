package domain

import "time"

// AvailableSlot свободное время начала для конкретного мастера
// Сетка слотов не зависит от длительности услуги
type AvailableSlot struct {
	StartTime time.Time // абсолютный момент, в локальной зоне подразделения
	StaffID   int64
	StaffName string
}

// TimeOfDay returns the slot start as HH:MM in its own location
func (s *AvailableSlot) TimeOfDay() string {
	return s.StartTime.Format(TimeFormat)
}
