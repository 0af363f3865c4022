package clients

import "time"

// ResolveRequest данные о клиенте, пришедшие с запросом
type ResolveRequest struct {
	UnitID    int64
	Name      string
	Phone     string // в любом формате, нормализуется до цифр
	BirthDate *time.Time
	Notes     *string
	Tags      []string
}
