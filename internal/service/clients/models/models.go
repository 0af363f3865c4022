package models

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// ClientResponse представление клиента во внешнем API
type ClientResponse struct {
	ID         int64    `json:"id"`
	UnitID     int64    `json:"unit_id"`
	Name       string   `json:"name"`
	Phone      *string  `json:"phone,omitempty"`
	BirthDate  *string  `json:"birth_date,omitempty"` // YYYY-MM-DD
	Notes      *string  `json:"notes,omitempty"`
	Tags       []string `json:"tags"`
	VisitCount int      `json:"visit_count"`
}

// FromDomainClient конвертирует клиента в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	resp := &ClientResponse{
		ID:         c.ID,
		UnitID:     c.UnitID,
		Name:       c.Name,
		Phone:      c.Phone,
		Notes:      c.Notes,
		Tags:       c.Tags,
		VisitCount: c.VisitCount,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	if c.BirthDate != nil {
		birthDate := c.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &birthDate
	}

	return resp
}
