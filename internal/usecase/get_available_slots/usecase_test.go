package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	unitRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-SchedulingService/internal/service/timezone"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUnits struct {
	units map[int64]*domain.Unit
}

func (f *fakeUnits) GetByID(_ context.Context, id int64) (*domain.Unit, error) {
	if u, ok := f.units[id]; ok {
		return u, nil
	}
	return nil, unitRepo.ErrUnitNotFound
}

type fakeCatalog struct {
	staff    []*domain.Staff
	services []*domain.Service
}

func (f *fakeCatalog) ListActiveStaff(context.Context, int64) ([]*domain.Staff, error) {
	return f.staff, nil
}

func (f *fakeCatalog) ListActiveServices(context.Context, int64) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeBookings struct {
	bookings []*domain.Booking
	err      error

	gotStart, gotEnd time.Time
}

func (f *fakeBookings) ListActiveByUnit(_ context.Context, _ int64, start, end time.Time) ([]*domain.Booking, error) {
	f.gotStart, f.gotEnd = start, end
	return f.bookings, f.err
}

func newTestUseCase(bookings *fakeBookings, catalog *fakeCatalog) *UseCase {
	units := &fakeUnits{units: map[int64]*domain.Unit{
		1: {ID: 1, Name: "Centro", Timezone: "America/Sao_Paulo", OpeningHour: 7, ClosingHour: 21},
	}}
	return NewUseCase(bookings, catalog, units, timezone.NewNormalizer(nil), 30, logger.NewNop())
}

func slotTimes(slots []Slot, staffID int64) []string {
	result := make([]string, 0)
	for _, s := range slots {
		if s.StaffID == staffID {
			result = append(result, s.Time)
		}
	}
	return result
}

func TestExecute_ExcludesBookedSlot(t *testing.T) {
	loc := time.FixedZone("-03:00", -3*3600)
	bookings := &fakeBookings{bookings: []*domain.Booking{
		{
			StaffID:   10,
			StartTime: time.Date(2024, 6, 1, 10, 0, 0, 0, loc).UTC(),
			EndTime:   time.Date(2024, 6, 1, 10, 30, 0, 0, loc).UTC(),
			Status:    domain.StatusConfirmed,
		},
	}}
	catalog := &fakeCatalog{staff: []*domain.Staff{{ID: 10, UnitID: 1, Name: "Carlos", Active: true}}}

	resp, err := newTestUseCase(bookings, catalog).Execute(context.Background(), &Request{UnitID: 1, Date: "2024-06-01"})
	require.NoError(t, err)

	times := slotTimes(resp.Slots, 10)
	assert.NotContains(t, times, "10:00")
	assert.Contains(t, times, "09:30")
	assert.Contains(t, times, "10:30")

	// 07:00-20:30 с шагом 30 минут = 28 слотов, один занят
	assert.Len(t, times, 27)
	assert.Equal(t, "07:00", times[0])
	assert.Equal(t, "20:30", times[len(times)-1])

	assert.True(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).Equal(bookings.gotStart))
	assert.True(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC).Equal(bookings.gotEnd))
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	loc := time.FixedZone("-03:00", -3*3600)
	bookings := &fakeBookings{bookings: []*domain.Booking{
		{
			StaffID:   10,
			StartTime: time.Date(2024, 6, 1, 10, 0, 0, 0, loc),
			EndTime:   time.Date(2024, 6, 1, 10, 30, 0, 0, loc),
			Status:    domain.StatusCancelled,
		},
	}}
	catalog := &fakeCatalog{staff: []*domain.Staff{{ID: 10, Name: "Carlos"}}}

	resp, err := newTestUseCase(bookings, catalog).Execute(context.Background(), &Request{UnitID: 1, Date: "2024-06-01"})
	require.NoError(t, err)
	assert.Contains(t, slotTimes(resp.Slots, 10), "10:00")
}

func TestExecute_OrderAndFilter(t *testing.T) {
	catalog := &fakeCatalog{
		staff: []*domain.Staff{
			{ID: 2, Name: "Ana Paula"},
			{ID: 1, Name: "Bruno"},
			{ID: 3, Name: "Paulo"},
		},
		services: []*domain.Service{{ID: 5, Name: "Corte", Price: 45, DurationMinutes: 30}},
	}

	resp, err := newTestUseCase(&fakeBookings{}, catalog).Execute(context.Background(), &Request{
		UnitID:      1,
		Date:        "2024-06-01",
		StaffFilter: "paul",
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resp.Slots), 4)

	assert.Equal(t, int64(2), resp.Slots[0].StaffID)
	assert.Equal(t, int64(3), resp.Slots[1].StaffID)
	assert.Equal(t, "07:00", resp.Slots[1].Time)
	assert.Equal(t, "07:30", resp.Slots[2].Time)
	assert.Empty(t, slotTimes(resp.Slots, 1))

	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Corte", resp.Services[0].Name)
	assert.Equal(t, "2024-06-01T07:00:00-03:00", resp.Slots[0].DateTime.Format(time.RFC3339))
}

func TestExecute_FilterMatchesNobody(t *testing.T) {
	catalog := &fakeCatalog{staff: []*domain.Staff{{ID: 1, Name: "Bruno"}}}

	resp, err := newTestUseCase(&fakeBookings{}, catalog).Execute(context.Background(), &Request{
		UnitID:      1,
		Date:        "2024-06-01",
		StaffFilter: "zé",
	})
	require.NoError(t, err)
	assert.True(t, resp.NoStaff)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	catalog := &fakeCatalog{staff: []*domain.Staff{{ID: 1, Name: "Bruno"}}}
	uc := newTestUseCase(&fakeBookings{}, catalog)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{UnitID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{UnitID: 1, Date: "01/06/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Execute(ctx, &Request{UnitID: 99, Date: "2024-06-01"})
	assert.ErrorIs(t, err, ErrUnitNotFound)

	failing := newTestUseCase(&fakeBookings{err: errors.New("timeout")}, catalog)
	_, err = failing.Execute(ctx, &Request{UnitID: 1, Date: "2024-06-01"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestGenerateGrid(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	grid := generateGrid(day, 9, 11, 45*time.Minute)
	require.Len(t, grid, 3)
	assert.Equal(t, "09:00", grid[0].Format(domain.TimeFormat))
	assert.Equal(t, "09:45", grid[1].Format(domain.TimeFormat))
	assert.Equal(t, "10:30", grid[2].Format(domain.TimeFormat))
}
