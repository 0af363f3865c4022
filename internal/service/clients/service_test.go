package clients

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/client"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// memoryRepo хранилище клиентов в памяти с уникальностью (unit, phone)
type memoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	clients map[int64]*domain.Client
	updates int

	// racer создаёт запись с тем же телефоном перед первым Create
	racer *domain.Client
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1, clients: make(map[int64]*domain.Client)}
}

func (r *memoryRepo) insert(c *domain.Client) *domain.Client {
	stored := *c
	stored.ID = r.nextID
	stored.Tags = append([]string{}, c.Tags...)
	r.nextID++
	r.clients[stored.ID] = &stored
	copied := stored
	return &copied
}

func (r *memoryRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.racer != nil {
		r.insert(r.racer)
		r.racer = nil
	}

	if c.Phone != nil {
		for _, existing := range r.clients {
			if existing.UnitID == c.UnitID && existing.Phone != nil && *existing.Phone == *c.Phone {
				return nil, clientRepo.ErrDuplicatePhone
			}
		}
	}
	return r.insert(c), nil
}

func (r *memoryRepo) GetByPhone(_ context.Context, unitID int64, phone string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.UnitID == unitID && c.Phone != nil && *c.Phone == phone {
			copied := *c
			copied.Tags = append([]string{}, c.Tags...)
			return &copied, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (r *memoryRepo) FindByName(_ context.Context, unitID int64, name string, birthDate *time.Time) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *domain.Client
	for _, c := range r.clients {
		if c.UnitID != unitID || !strings.EqualFold(c.Name, name) {
			continue
		}
		if birthDate != nil && (c.BirthDate == nil || !c.BirthDate.Equal(*birthDate)) {
			continue
		}
		if found == nil || c.ID < found.ID {
			found = c
		}
	}
	if found == nil {
		return nil, clientRepo.ErrClientNotFound
	}
	copied := *found
	return &copied, nil
}

func (r *memoryRepo) Update(_ context.Context, id int64, update domain.ClientUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return clientRepo.ErrClientNotFound
	}
	r.updates++
	if update.BirthDate != nil {
		c.BirthDate = update.BirthDate
	}
	if update.Notes != nil {
		c.Notes = update.Notes
	}
	if update.Tags != nil {
		c.Tags = append([]string{}, update.Tags...)
	}
	return nil
}

type countingMetrics struct {
	created int
}

func (m *countingMetrics) IncClientsCreated(string) { m.created++ }

func newTestService(repo ClientRepository) (*Service, *countingMetrics) {
	m := &countingMetrics{}
	return NewService(repo, m, logger.NewNop()), m
}

func TestResolve_CreatesByPhone(t *testing.T) {
	repo := newMemoryRepo()
	svc, m := newTestService(repo)

	client, created, err := svc.Resolve(context.Background(), ResolveRequest{
		UnitID: 1,
		Name:   "João Silva",
		Phone:  "+55 (11) 99999-0000",
		Tags:   []string{"Novo"},
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "5511999990000", *client.Phone)
	assert.Equal(t, 0, client.VisitCount)
	assert.Equal(t, []string{"Novo"}, client.Tags)
	assert.Equal(t, 1, m.created)
}

func TestResolve_IdempotentMerge(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	birth := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	req := ResolveRequest{
		UnitID:    1,
		Name:      "Maria",
		Phone:     "11 98888-7777",
		BirthDate: &birth,
		Notes:     ptr.Ptr("prefere tesoura"),
		Tags:      []string{"VIP"},
	}

	first, created, err := svc.Resolve(ctx, req)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Resolve(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 0, repo.updates)

	stored, err := repo.GetByPhone(ctx, 1, "11988887777")
	require.NoError(t, err)
	assert.Equal(t, []string{"VIP"}, stored.Tags)
	assert.Equal(t, "prefere tesoura", *stored.Notes)
}

func TestResolve_PaddedTagsAreIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	req := ResolveRequest{UnitID: 1, Name: "Bia", Phone: "5511900000009", Tags: []string{" VIP ", "  "}}

	_, created, err := svc.Resolve(ctx, req)
	require.NoError(t, err)
	require.True(t, created)

	client, created, err := svc.Resolve(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, repo.updates)
	assert.Equal(t, []string{"VIP"}, client.Tags)

	stored, err := repo.GetByPhone(ctx, 1, "5511900000009")
	require.NoError(t, err)
	assert.Equal(t, []string{"VIP"}, stored.Tags)
}

func TestResolve_TagUnionNeverShrinks(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Ana", Phone: "5511900000001", Tags: []string{"VIP"}})
	require.NoError(t, err)

	client, created, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Ana", Phone: "5511900000001", Tags: []string{"Novo"}})
	require.NoError(t, err)
	assert.False(t, created)
	assert.ElementsMatch(t, []string{"Novo", "VIP"}, client.Tags)

	client, _, err = svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Ana", Phone: "5511900000001"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Novo", "VIP"}, client.Tags)
}

func TestResolve_BirthDateOnlyWhenUnset(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Caio", Phone: "5511900000002"})
	require.NoError(t, err)

	first := time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)
	client, _, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Caio", Phone: "5511900000002", BirthDate: &first})
	require.NoError(t, err)
	require.NotNil(t, client.BirthDate)
	assert.True(t, first.Equal(*client.BirthDate))

	other := time.Date(2000, 2, 2, 0, 0, 0, 0, time.UTC)
	client, _, err = svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Caio", Phone: "5511900000002", BirthDate: &other})
	require.NoError(t, err)
	assert.True(t, first.Equal(*client.BirthDate))
}

func TestResolve_EmptyNotesDoNotOverwrite(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Bia", Phone: "5511900000003", Notes: ptr.Ptr("alergia")})
	require.NoError(t, err)

	client, _, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Bia", Phone: "5511900000003", Notes: ptr.Ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "alergia", *client.Notes)
	assert.Equal(t, 0, repo.updates)
}

func TestResolve_DuplicateOnInsertReloads(t *testing.T) {
	repo := newMemoryRepo()
	repo.racer = &domain.Client{UnitID: 1, Name: "Pedro", Phone: ptr.Ptr("5511900000004"), Tags: []string{"VIP"}}
	svc, m := newTestService(repo)

	client, created, err := svc.Resolve(context.Background(), ResolveRequest{
		UnitID: 1,
		Name:   "Pedro",
		Phone:  "5511900000004",
		Tags:   []string{"Novo"},
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), client.ID)
	assert.ElementsMatch(t, []string{"VIP", "Novo"}, client.Tags)
	assert.Equal(t, 0, m.created)
}

func TestResolve_NameFallback(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	birth := time.Date(1992, 3, 4, 0, 0, 0, 0, time.UTC)
	created, wasCreated, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Lucas Souza", BirthDate: &birth})
	require.NoError(t, err)
	require.True(t, wasCreated)
	assert.Nil(t, created.Phone)

	found, wasCreated, err := svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "lucas souza", BirthDate: &birth, Tags: []string{"VIP"}})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, found.ID)
	// найденный по имени клиент не дополняется
	assert.Empty(t, found.Tags)
	assert.Equal(t, 0, repo.updates)

	other := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	_, wasCreated, err = svc.Resolve(ctx, ResolveRequest{UnitID: 1, Name: "Lucas Souza", BirthDate: &other})
	require.NoError(t, err)
	assert.True(t, wasCreated)
}

func TestResolve_NoIdentity(t *testing.T) {
	svc, _ := newTestService(newMemoryRepo())

	_, _, err := svc.Resolve(context.Background(), ResolveRequest{UnitID: 1, Phone: "abc"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister(t *testing.T) {
	repo := newMemoryRepo()
	svc, m := newTestService(repo)
	ctx := context.Background()

	client, err := svc.Register(ctx, 1, "Rafa", "(11) 97777-6666")
	require.NoError(t, err)
	assert.Equal(t, "11977776666", *client.Phone)
	assert.Equal(t, 1, m.created)

	_, err = svc.Register(ctx, 1, "Outro", "11977776666")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// другой unit - другой клиент
	_, err = svc.Register(ctx, 2, "Rafa", "11977776666")
	assert.NoError(t, err)

	_, err = svc.Register(ctx, 1, "", "11977776666")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindByPhone(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.FindByPhone(ctx, 1, "11 90000-0000")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Register(ctx, 1, "Rafa", "11900000000")
	require.NoError(t, err)

	client, err := svc.FindByPhone(ctx, 1, "(11) 90000-0000")
	require.NoError(t, err)
	assert.Equal(t, "Rafa", client.Name)

	_, err = svc.FindByPhone(ctx, 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type failingRepo struct {
	*memoryRepo
}

func (r *failingRepo) GetByPhone(context.Context, int64, string) (*domain.Client, error) {
	return nil, errors.New("connection refused")
}

func TestResolve_StoreErrorIsInternal(t *testing.T) {
	svc, _ := newTestService(&failingRepo{memoryRepo: newMemoryRepo()})

	_, _, err := svc.Resolve(context.Background(), ResolveRequest{UnitID: 1, Name: "X", Phone: "11900000000"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStore)
}
