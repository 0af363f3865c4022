package domain

import (
	"strings"
	"time"
)

// Staff a bookable professional of a unit
type Staff struct {
	ID     int64
	UnitID int64
	Name   string
	Active bool
}

// Service a bookable offering with fixed price and duration
type Service struct {
	ID              int64
	UnitID          int64
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
}

// Duration returns the service duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// MatchesName проверяет регистронезависимое вхождение подстроки в имя
func MatchesName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(strings.TrimSpace(query)))
}

// FirstStaffByName возвращает первого мастера, имя которого содержит query
// Порядок определяется порядком списка (хранилище сортирует по имени и id)
func FirstStaffByName(staff []*Staff, query string) *Staff {
	for _, s := range staff {
		if MatchesName(s.Name, query) {
			return s
		}
	}
	return nil
}

// FilterStaffByName возвращает всех мастеров, имя которых содержит query, сохраняя порядок
func FilterStaffByName(staff []*Staff, query string) []*Staff {
	result := make([]*Staff, 0, len(staff))
	for _, s := range staff {
		if MatchesName(s.Name, query) {
			result = append(result, s)
		}
	}
	return result
}

// FirstServiceByName возвращает первую услугу, название которой содержит query
func FirstServiceByName(services []*Service, query string) *Service {
	for _, s := range services {
		if MatchesName(s.Name, query) {
			return s
		}
	}
	return nil
}
