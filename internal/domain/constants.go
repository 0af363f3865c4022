package domain

// Default configuration values
const (
	DefaultSlotStepMinutes = 30
	DefaultOpeningHour     = 7
	DefaultClosingHour     = 21
	DefaultOffset          = "-03:00"
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240
	MaxNameLength      = 200
	MaxNotesLength     = 1000
	MaxTags            = 50
)

// Time format constants
const (
	TimeFormat      = "15:04"               // HH:MM
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	LocalDateTime   = "2006-01-02T15:04:05" // без смещения, локальное время подразделения
	DateTimeDisplay = "2006-01-02 15:04"
)

// InactiveStatuses статусы, которые не занимают интервал мастера
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// CancellableStatuses статусы, из которых бронирование можно отменить
var CancellableStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
