package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), db, mock
}

// txContext открывает транзакцию sqlmock и кладёт её в контекст
func txContext(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	return dbmetrics.WithTx(context.Background(), tx)
}

func bookingRow(id int64, start time.Time, status domain.BookingStatus) []driver.Value {
	return []driver.Value{
		id, int64(1), int64(7), int64(3), int64(11),
		start, start.Add(30 * time.Minute), string(status),
		"Maria", "5511999990000", "Carlos", "Corte", 45.0, nil,
		nil, start, start,
	}
}

func bookingRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows(bookingColumns)
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	newBooking := func() *domain.Booking {
		return &domain.Booking{
			UnitID:      1,
			StaffID:     7,
			ServiceID:   3,
			ClientID:    ptr.Ptr(int64(11)),
			StartTime:   start,
			EndTime:     start.Add(30 * time.Minute),
			Status:      domain.StatusPending,
			ClientName:  "Maria",
			StaffName:   "Carlos",
			ServiceName: "Corte",
			TotalPrice:  45,
		}
	}

	t.Run("returns id", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO bookings (.+) RETURNING id, created_at, updated_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), start, start))

		created, err := repo.Create(ctx, newBooking())
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, start, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	conflicts := []string{"23P01", "40001", "40P01"}
	for _, code := range conflicts {
		t.Run("conflict "+code, func(t *testing.T) {
			repo, _, mock := newMock(t)
			mock.ExpectQuery(`INSERT INTO bookings`).
				WillReturnError(&pq.Error{Code: pq.ErrorCode(code)})

			_, err := repo.Create(ctx, newBooking())
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		})
	}

	t.Run("other error", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(ctx, newBooking())
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NotErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestRepository_GetByID(t *testing.T) {
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 AND unit_id = \$2$`).
			WithArgs(int64(5), int64(1)).
			WillReturnRows(bookingRows(bookingRow(5, start, domain.StatusConfirmed)))

		b, err := repo.GetByID(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), b.ID)
		assert.Equal(t, domain.StatusConfirmed, b.Status)
		require.NotNil(t, b.ClientID)
		assert.Equal(t, int64(11), *b.ClientID)
		require.NotNil(t, b.ClientPhone)
		assert.Equal(t, "5511999990000", *b.ClientPhone)
		assert.Nil(t, b.Notes)
		assert.Nil(t, b.CancelledAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("locks row inside transaction", func(t *testing.T) {
		repo, db, mock := newMock(t)
		ctx := txContext(t, db, mock)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE`).
			WillReturnRows(bookingRows(bookingRow(5, start, domain.StatusPending)))

		_, err := repo.GetByID(ctx, 1, 5)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListActiveByStaff(t *testing.T) {
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	repo, db, mock := newMock(t)
	ctx := txContext(t, db, mock)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE staff_id = \$1 AND status NOT IN \(\$2\) AND start_time < \$3 AND end_time > \$4 ORDER BY start_time ASC FOR UPDATE`).
		WithArgs(int64(7), "cancelled", end, start).
		WillReturnRows(bookingRows(bookingRow(1, start.Add(-15*time.Minute), domain.StatusConfirmed)))

	bookings, err := repo.ListActiveByStaff(ctx, 7, start, end)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveByUnit(t *testing.T) {
	day := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)

	repo, _, mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE unit_id = \$1 AND status NOT IN \(\$2\) (.+) ORDER BY start_time ASC, staff_id ASC$`).
		WithArgs(int64(1), "cancelled", day.Add(24*time.Hour), day).
		WillReturnRows(bookingRows(
			bookingRow(1, day.Add(10*time.Hour), domain.StatusConfirmed),
			bookingRow(2, day.Add(11*time.Hour), domain.StatusPending),
		))

	bookings, err := repo.ListActiveByUnit(context.Background(), 1, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestRepository_FindCancellable(t *testing.T) {
	from := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("with date bounds", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE client_phone = \$1 AND status IN \(\$2,\$3\) AND unit_id = \$4 AND start_time >= \$5 AND start_time < \$6 ORDER BY start_time ASC, id ASC$`).
			WithArgs("5511999990000", "pending", "confirmed", int64(1), from, to).
			WillReturnRows(bookingRows(bookingRow(3, from.Add(13*time.Hour), domain.StatusPending)))

		bookings, err := repo.FindCancellable(context.Background(), domain.CancellableFilter{
			UnitID: 1,
			Phone:  "5511999990000",
			From:   &from,
			To:     &to,
		})
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, int64(3), bookings[0].ID)
	})

	t.Run("no upper bound", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectQuery(`start_time >= \$5 ORDER BY start_time ASC, id ASC$`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		bookings, err := repo.FindCancellable(context.Background(), domain.CancellableFilter{
			UnitID: 1,
			Phone:  "5511999990000",
			From:   &from,
		})
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("cancel sets cancelled_at", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\), cancelled_at = NOW\(\) WHERE (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("confirm does not touch cancelled_at", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE`).
			WithArgs("confirmed", int64(5), "pending", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 1, 5, []domain.BookingStatus{domain.StatusPending}, domain.StatusConfirmed)
		require.NoError(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		repo, _, mock := newMock(t)
		mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("invalid target status", func(t *testing.T) {
		repo, _, _ := newMock(t)

		err := repo.UpdateStatus(context.Background(), 1, 5, domain.CancellableStatuses, domain.BookingStatus("archived"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
