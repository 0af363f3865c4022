package clients

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/client"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Service сервис идентификации клиентов
type Service struct {
	clientRepo ClientRepository
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Resolve находит или создает клиента по телефону, а без телефона по имени (и дате рождения)
// Возвращает клиента и признак того, что запись была создана
//
// Найденный по телефону клиент дополняется новыми данными, существующие поля не затираются.
// Найденный по имени клиент возвращается без изменений
func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (*domain.Client, bool, error) {
	name := strings.TrimSpace(req.Name)
	phone := domain.NormalizePhone(req.Phone)

	if req.UnitID <= 0 {
		return nil, false, fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if phone != "" {
		return s.resolveByPhone(ctx, req, name, phone)
	}

	if name == "" {
		return nil, false, fmt.Errorf("%w: phone or name is required", ErrInvalidInput)
	}

	return s.resolveByName(ctx, req, name)
}

func (s *Service) resolveByPhone(ctx context.Context, req ResolveRequest, name, phone string) (*domain.Client, bool, error) {
	existing, err := s.clientRepo.GetByPhone(ctx, req.UnitID, phone)
	if err == nil {
		client, err := s.merge(ctx, existing, req)
		return client, false, err
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("Resolve: failed to get client by phone in unit=%d: %v", req.UnitID, err)
		return nil, false, fmt.Errorf("%w: Resolve - get by phone: %v", ErrInternal, err)
	}

	if name == "" {
		return nil, false, fmt.Errorf("%w: name is required for a new client", ErrInvalidInput)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		UnitID:     req.UnitID,
		Name:       name,
		Phone:      ptr.Ptr(phone),
		BirthDate:  req.BirthDate,
		Notes:      nonEmpty(req.Notes),
		Tags:       cleanTags(req.Tags),
		VisitCount: 0,
	})
	if errors.Is(err, clientRepo.ErrDuplicatePhone) {
		// Параллельный первый контакт с того же телефона успел создать запись
		s.logger.Warn("Resolve: concurrent insert for phone in unit=%d, reloading", req.UnitID)

		existing, err = s.clientRepo.GetByPhone(ctx, req.UnitID, phone)
		if err != nil {
			s.logger.Error("Resolve: failed to reload client after duplicate in unit=%d: %v", req.UnitID, err)
			return nil, false, fmt.Errorf("%w: Resolve - reload after duplicate: %v", ErrInternal, err)
		}

		client, err := s.merge(ctx, existing, req)
		return client, false, err
	}
	if err != nil {
		s.logger.Error("Resolve: failed to create client in unit=%d: %v", req.UnitID, err)
		return nil, false, fmt.Errorf("%w: Resolve - create client: %v", ErrInternal, err)
	}

	s.metrics.IncClientsCreated(unitLabel(req.UnitID))
	s.logger.Info("Resolve: created client id=%d in unit=%d", created.ID, req.UnitID)
	return created, true, nil
}

func (s *Service) resolveByName(ctx context.Context, req ResolveRequest, name string) (*domain.Client, bool, error) {
	existing, err := s.clientRepo.FindByName(ctx, req.UnitID, name, req.BirthDate)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("Resolve: failed to find client by name in unit=%d: %v", req.UnitID, err)
		return nil, false, fmt.Errorf("%w: Resolve - find by name: %v", ErrInternal, err)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		UnitID:     req.UnitID,
		Name:       name,
		BirthDate:  req.BirthDate,
		Notes:      nonEmpty(req.Notes),
		Tags:       cleanTags(req.Tags),
		VisitCount: 0,
	})
	if err != nil {
		s.logger.Error("Resolve: failed to create client without phone in unit=%d: %v", req.UnitID, err)
		return nil, false, fmt.Errorf("%w: Resolve - create client: %v", ErrInternal, err)
	}

	s.metrics.IncClientsCreated(unitLabel(req.UnitID))
	s.logger.Info("Resolve: created client id=%d without phone in unit=%d", created.ID, req.UnitID)
	return created, true, nil
}

// merge дополняет найденного клиента новыми непустыми данными
// Дата рождения заполняется только если не была указана, теги объединяются
func (s *Service) merge(ctx context.Context, client *domain.Client, req ResolveRequest) (*domain.Client, error) {
	var update domain.ClientUpdate

	if client.BirthDate == nil && req.BirthDate != nil {
		update.BirthDate = req.BirthDate
	}

	if notes := nonEmpty(req.Notes); notes != nil && (client.Notes == nil || *client.Notes != *notes) {
		update.Notes = notes
	}

	if merged, changed := client.MergeTags(cleanTags(req.Tags)); changed {
		update.Tags = merged
	}

	if update.IsEmpty() {
		return client, nil
	}

	if err := s.clientRepo.Update(ctx, client.ID, update); err != nil {
		s.logger.Error("Resolve: failed to update client id=%d: %v", client.ID, err)
		return nil, fmt.Errorf("%w: Resolve - update client: %v", ErrInternal, err)
	}

	if update.BirthDate != nil {
		client.BirthDate = update.BirthDate
	}
	if update.Notes != nil {
		client.Notes = update.Notes
	}
	if update.Tags != nil {
		client.Tags = update.Tags
	}

	s.logger.Info("Resolve: updated client id=%d", client.ID)
	return client, nil
}

// FindByPhone ищет клиента подразделения по телефону
func (s *Service) FindByPhone(ctx context.Context, unitID int64, rawPhone string) (*domain.Client, error) {
	phone := domain.NormalizePhone(rawPhone)
	if unitID <= 0 || phone == "" {
		return nil, fmt.Errorf("%w: unitID and phone are required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByPhone(ctx, unitID, phone)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("FindByPhone: repository error in unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: FindByPhone - repository error: %v", ErrInternal, err)
	}

	return client, nil
}

// Register регистрирует нового клиента; существующий телефон даёт ErrAlreadyRegistered
func (s *Service) Register(ctx context.Context, unitID int64, name, rawPhone string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	phone := domain.NormalizePhone(rawPhone)
	if unitID <= 0 || name == "" || phone == "" {
		return nil, fmt.Errorf("%w: unitID, name and phone are required", ErrInvalidInput)
	}

	_, err := s.clientRepo.GetByPhone(ctx, unitID, phone)
	if err == nil {
		s.logger.Warn("Register: phone already registered in unit=%d", unitID)
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("Register: repository error in unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: Register - get by phone: %v", ErrInternal, err)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		UnitID: unitID,
		Name:   name,
		Phone:  ptr.Ptr(phone),
		Tags:   []string{},
	})
	if errors.Is(err, clientRepo.ErrDuplicatePhone) {
		return nil, ErrAlreadyRegistered
	}
	if err != nil {
		s.logger.Error("Register: failed to create client in unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: Register - create client: %v", ErrInternal, err)
	}

	s.metrics.IncClientsCreated(unitLabel(unitID))
	s.logger.Info("Register: created client id=%d in unit=%d", created.ID, unitID)
	return created, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func cleanTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

func unitLabel(unitID int64) string {
	return strconv.FormatInt(unitID, 10)
}
