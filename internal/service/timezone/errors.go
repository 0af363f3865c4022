package timezone

import "errors"

var (
	// ErrInvalidTimestamp возвращается, когда строку нельзя разобрать в дату/время
	ErrInvalidTimestamp = errors.New("timezone.service: invalid timestamp")

	// ErrInvalidDate возвращается при некорректной календарной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("timezone.service: invalid date")

	// ErrInvalidOffset возвращается при некорректном смещении в таблице (ожидается ±HH:MM)
	ErrInvalidOffset = errors.New("timezone.service: invalid offset")
)
