package unit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	columns := []string{"id", "name", "timezone", "opening_hour", "closing_hour", "created_at", "updated_at"}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM units WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "Centro", "America/Sao_Paulo", 7, 21, now, now))

		u, err := NewRepository(db).GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", u.Timezone)
		assert.Equal(t, 7, u.OpeningHour)
		assert.Equal(t, 21, u.ClosingHour)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM units`).WillReturnRows(sqlmock.NewRows(columns))

		_, err = NewRepository(db).GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})
}
