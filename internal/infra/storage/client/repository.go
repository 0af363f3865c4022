package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// codeUniqueViolation SQLSTATE нарушения уникального индекса
const codeUniqueViolation = "23505"

var clientColumns = []string{
	"id",
	"unit_id",
	"name",
	"phone",
	"birth_date",
	"notes",
	"tags",
	"visit_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентов
// Уникальность (unit_id, phone) обеспечивается индексом в БД
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
// При нарушении уникальности телефона возвращает ErrDuplicatePhone
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	tags := client.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"unit_id",
			"name",
			"phone",
			"birth_date",
			"notes",
			"tags",
			"visit_count",
		).
		Values(
			client.UnitID,
			client.Name,
			client.Phone,
			client.BirthDate,
			client.Notes,
			pq.Array(tags),
			client.VisitCount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicatePhone
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	client.Tags = tags
	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return client, nil
}

// GetByPhone получает клиента подразделения по нормализованному телефону
func (r *Repository) GetByPhone(ctx context.Context, unitID int64, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"unit_id": unitID, "phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	client, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("GetByPhone: %w", err)
	}

	return client, nil
}

// FindByName ищет клиента по точному имени без учёта регистра
// Если передана дата рождения, она тоже должна совпасть. При нескольких совпадениях берётся самый ранний клиент
func (r *Repository) FindByName(ctx context.Context, unitID int64, name string, birthDate *time.Time) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"unit_id": unitID}).
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name))

	if birthDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"birth_date": birthDate.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByName - build select query: %v", ErrBuildQuery, err)
	}

	client, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("FindByName: %w", err)
	}

	return client, nil
}

// Update сохраняет только заполненные поля ClientUpdate
func (r *Repository) Update(ctx context.Context, id int64, update domain.ClientUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("clients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.BirthDate != nil {
		updateBuilder = updateBuilder.Set("birth_date", *update.BirthDate)
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *update.Notes)
	}
	if update.Tags != nil {
		updateBuilder = updateBuilder.Set("tags", pq.Array(update.Tags))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// scanClient сканирует одну строку клиента
func scanClient(row *sql.Row) (*domain.Client, error) {
	var client domain.Client
	var tags pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&client.ID,
		&client.UnitID,
		&client.Name,
		&client.Phone,
		&client.BirthDate,
		&client.Notes,
		&tags,
		&client.VisitCount,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan client: %v", ErrScanRow, err)
	}

	client.Tags = []string(tags)
	if client.Tags == nil {
		client.Tags = []string{}
	}
	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}
