package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// generateGrid генерирует сетку моментов начала слотов на день
// От часа открытия включительно до часа закрытия не включительно, с шагом step.
// Сетка не зависит от длительности услуги
func generateGrid(day time.Time, openingHour, closingHour int, step time.Duration) []time.Time {
	open := day.Add(time.Duration(openingHour) * time.Hour)
	closeAt := day.Add(time.Duration(closingHour) * time.Hour)

	grid := make([]time.Time, 0)
	for t := open; t.Before(closeAt); t = t.Add(step) {
		grid = append(grid, t)
	}

	return grid
}

// collectAvailableSlots отбирает свободные пары (момент, мастер)
// Слот занят, если его момент попадает в [start, end) неотменённого бронирования мастера.
// Порядок: по времени, внутри одного времени - в порядке списка мастеров
func collectAvailableSlots(grid []time.Time, staff []*domain.Staff, bookings []*domain.Booking) []domain.AvailableSlot {
	byStaff := make(map[int64][]*domain.Booking, len(staff))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		byStaff[b.StaffID] = append(byStaff[b.StaffID], b)
	}

	result := make([]domain.AvailableSlot, 0, len(grid)*len(staff))
	for _, t := range grid {
		for _, s := range staff {
			if isCovered(t, byStaff[s.ID]) {
				continue
			}
			result = append(result, domain.AvailableSlot{
				StartTime: t,
				StaffID:   s.ID,
				StaffName: s.Name,
			})
		}
	}

	return result
}

func isCovered(t time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.Covers(t) {
			return true
		}
	}
	return false
}
