package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var offsetPattern = regexp.MustCompile(`^[+-](\d{2}):(\d{2})$`)

// OffsetTable фиксированные смещения часовых поясов подразделений
// Летнее время не учитывается: перечисленные зоны его не используют
type OffsetTable struct {
	offsets       map[string]string
	defaultOffset string
}

// NewOffsetTable создает таблицу смещений. Пустой defaultOffset заменяется на -03:00
func NewOffsetTable(offsets map[string]string, defaultOffset string) (*OffsetTable, error) {
	if defaultOffset == "" {
		defaultOffset = domain.DefaultOffset
	}
	if _, err := offsetSeconds(defaultOffset); err != nil {
		return nil, fmt.Errorf("%w: default offset %q", ErrInvalidOffset, defaultOffset)
	}

	table := &OffsetTable{
		offsets:       make(map[string]string, len(offsets)),
		defaultOffset: defaultOffset,
	}

	for zone, offset := range offsets {
		if _, err := offsetSeconds(offset); err != nil {
			return nil, fmt.Errorf("%w: zone %s offset %q", ErrInvalidOffset, zone, offset)
		}
		table.offsets[zone] = offset
	}

	return table, nil
}

// DefaultOffsetTable таблица для зон Бразилии и UTC
func DefaultOffsetTable() *OffsetTable {
	table, _ := NewOffsetTable(map[string]string{
		"America/Sao_Paulo":    "-03:00",
		"America/Fortaleza":    "-03:00",
		"America/Recife":       "-03:00",
		"America/Bahia":        "-03:00",
		"America/Belem":        "-03:00",
		"America/Maceio":       "-03:00",
		"America/Araguaina":    "-03:00",
		"America/Manaus":       "-04:00",
		"America/Cuiaba":       "-04:00",
		"America/Campo_Grande": "-04:00",
		"America/Porto_Velho":  "-04:00",
		"America/Boa_Vista":    "-04:00",
		"America/Rio_Branco":   "-05:00",
		"America/Eirunepe":     "-05:00",
		"America/Noronha":      "-02:00",
		"UTC":                  "+00:00",
		"Etc/UTC":              "+00:00",
	}, domain.DefaultOffset)
	return table
}

// Offset возвращает смещение зоны; неизвестная зона получает смещение по умолчанию
func (t *OffsetTable) Offset(zone string) string {
	if offset, ok := t.offsets[strings.TrimSpace(zone)]; ok {
		return offset
	}
	return t.defaultOffset
}

// Default возвращает смещение по умолчанию
func (t *OffsetTable) Default() string {
	return t.defaultOffset
}

// Location возвращает фиксированную зону для смещения zone
func (t *OffsetTable) Location(zone string) *time.Location {
	offset := t.Offset(zone)
	seconds, _ := offsetSeconds(offset)
	return time.FixedZone(offset, seconds)
}

func offsetSeconds(offset string) (int, error) {
	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return 0, ErrInvalidOffset
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 14 || minutes > 59 {
		return 0, ErrInvalidOffset
	}

	seconds := hours*3600 + minutes*60
	if offset[0] == '-' {
		seconds = -seconds
	}
	return seconds, nil
}
