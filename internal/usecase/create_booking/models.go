package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UnitID      int64      // ID подразделения
	StaffName   string     // Имя мастера (поиск по подстроке без учёта регистра)
	ServiceName string     // Название услуги (поиск по подстроке без учёта регистра)
	ClientName  string     // Имя клиента
	ClientPhone string     // Телефон клиента в любом формате (опционально)
	BirthDate   *time.Time // Дата рождения клиента (опционально)
	Notes       *string    // Заметки (опционально)
	Tags        []string   // Теги клиента
	DateTime    string     // Время начала: с зоной или локальное время подразделения
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking       *domain.Booking
	Client        *domain.Client // nil, если клиента без телефона сохранить не удалось
	ClientCreated bool
	ClientWarning string         // причина, по которой клиент не сохранён
	Location      *time.Location // зона подразделения для вывода времени
}
