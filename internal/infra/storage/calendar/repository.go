package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/infra/storage"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

const table = "calendars"

var columns = []string{
	"id",
	"name",
	"active",
	"hourly_price_cents",
	"thumbnail_media_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий ресурсов (столов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все календари, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	calendars := make([]*domain.Calendar, 0)
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		calendars = append(calendars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return calendars, nil
}

// GetByID получает календарь по ID
// Внутри транзакции строка блокируется (FOR UPDATE): так создание броней на один стол
// выполняется строго последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCalendar(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan calendar: %w", ErrScanRow, err)
	}

	return c, nil
}

// GetByName получает календарь по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCalendar(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan calendar: %w", ErrScanRow, err)
	}

	return c, nil
}

// Create создает новый календарь
func (r *Repository) Create(ctx context.Context, c *domain.Calendar) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "active", "hourly_price_cents", "thumbnail_media_id").
		Values(c.Name, c.Active, c.HourlyPriceCents, c.ThumbnailID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *c
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return &created, nil
}

// Update частично обновляет календарь и возвращает итоговое состояние
func (r *Repository) Update(ctx context.Context, id int64, upd domain.CalendarUpdate) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Active != nil {
		updateBuilder = updateBuilder.Set("active", *upd.Active)
	}
	if upd.HourlyPriceCents != nil {
		updateBuilder = updateBuilder.Set("hourly_price_cents", *upd.HourlyPriceCents)
	}
	if upd.ThumbnailID != nil {
		updateBuilder = updateBuilder.Set("thumbnail_media_id", *upd.ThumbnailID)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, name, active, hourly_price_cents, thumbnail_media_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	c, err := scanCalendar(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return c, nil
}

// Delete физически удаляет календарь
// Брони на календарь не удаляются каскадно: внешний ключ запрещает удаление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrCalendarReferenced
		}
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCalendarNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCalendar(row rowScanner) (*domain.Calendar, error) {
	var (
		c         domain.Calendar
		price     sql.NullInt64
		thumbnail sql.NullInt64
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Active,
		&price,
		&thumbnail,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		c.HourlyPriceCents = &price.Int64
	}
	if thumbnail.Valid {
		c.ThumbnailID = &thumbnail.Int64
	}

	return &c, nil
}
