package domain

import "time"

// Unit a business location with its own staff, services, clients and operating hours
type Unit struct {
	ID          int64
	Name        string
	Timezone    string // IANA name, например America/Sao_Paulo
	OpeningHour int    // 0-23
	ClosingHour int    // 1-24, не включительно
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasValidHours returns true if the operating hours form a non-empty day window
func (u *Unit) HasValidHours() bool {
	return u.OpeningHour >= 0 && u.ClosingHour <= 24 && u.OpeningHour < u.ClosingHour
}
