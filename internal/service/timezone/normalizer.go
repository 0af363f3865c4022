package timezone

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// explicitZone строка уже несёт зону: суффикс Z или ±HH:MM
var explicitZone = regexp.MustCompile(`(?i)(z|[+-]\d{2}:\d{2})$`)

// layouts допустимые форматы (секунды и дробная часть необязательны)
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Normalizer приводит временные метки запросов к абсолютному моменту
type Normalizer struct {
	table *OffsetTable
}

// NewNormalizer создает нормализатор; nil таблица заменяется на DefaultOffsetTable
func NewNormalizer(table *OffsetTable) *Normalizer {
	if table == nil {
		table = DefaultOffsetTable()
	}
	return &Normalizer{table: table}
}

// Normalize возвращает момент времени в UTC
// Явная зона во входной строке имеет приоритет, иначе время считается локальным для zone
func (n *Normalizer) Normalize(raw, zone string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	// "2024-06-01 10:00" -> "2024-06-01T10:00"
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}

	if explicitZone.MatchString(value) {
		if strings.HasSuffix(value, "z") {
			value = value[:len(value)-1] + "Z"
		}
	} else {
		value += n.table.Offset(zone)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// Location возвращает фиксированную зону подразделения
func (n *Normalizer) Location(zone string) *time.Location {
	return n.table.Location(zone)
}

// Day разбирает календарную дату YYYY-MM-DD как полночь в зоне подразделения
func (n *Normalizer) Day(date, zone string) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(date), n.Location(zone))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}

// DayBounds возвращает полуоткрытое окно календарного дня [00:00, следующая полночь) в зоне подразделения
func (n *Normalizer) DayBounds(date, zone string) (time.Time, time.Time, error) {
	start, err := n.Day(date, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
