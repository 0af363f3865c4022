package domain

import (
	"strings"
	"time"
)

// Client a person known to a unit
// Within one unit a non-null phone identifies at most one client
type Client struct {
	ID         int64
	UnitID     int64
	Name       string
	Phone      *string // только цифры
	BirthDate  *time.Time
	Notes      *string
	Tags       []string
	VisitCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ClientUpdate набор изменяемых полей; nil означает "не менять"
type ClientUpdate struct {
	BirthDate *time.Time
	Notes     *string
	Tags      []string
}

// IsEmpty returns true if there is nothing to persist
func (u *ClientUpdate) IsEmpty() bool {
	return u.BirthDate == nil && u.Notes == nil && u.Tags == nil
}

// HasTag returns true if the client carries the tag
func (c *Client) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MergeTags объединяет теги клиента с входящими
// Существующие теги сохраняют порядок, новые добавляются в конец. Набор тегов никогда не сокращается
// Входящие теги обрезаются по пробелам, пустые пропускаются
func (c *Client) MergeTags(incoming []string) ([]string, bool) {
	merged := make([]string, 0, len(c.Tags)+len(incoming))
	seen := make(map[string]struct{}, len(c.Tags)+len(incoming))

	for _, t := range c.Tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}

	changed := false
	for _, t := range incoming {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
		changed = true
	}

	return merged, changed
}
