package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	UnitID      int64  // ID подразделения
	Date        string // Дата в формате YYYY-MM-DD (локальная дата подразделения)
	StaffFilter string // Подстрока имени мастера (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     string    // Дата, на которую запрашивались слоты
	Slots    []Slot    // Свободные слоты по возрастанию времени
	Services []Service // Активные услуги подразделения
	NoStaff  bool      // Ни один активный мастер не подошёл под фильтр
}

// Slot свободное время начала у конкретного мастера
type Slot struct {
	Time      string    // "HH:MM" по времени подразделения
	DateTime  time.Time // Абсолютный момент в зоне подразделения
	StaffID   int64
	StaffName string
}

// Service услуга подразделения
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}
