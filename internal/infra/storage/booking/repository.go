package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/infra/storage"
	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"calendar_id",
	"starts_at",
	"ends_at",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Чистая граница хранения: бизнес-правил здесь нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование, заполняет ID и временные метки
// Если в контексте передана активная транзакция, использует её.
// EXCLUDE-ограничение в схеме дополнительно страхует от пересечений:
// его нарушение возвращается как ErrSlotOverlap
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"calendar_id",
			"starts_at",
			"ends_at",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_notes",
		).
		Values(
			b.CalendarID,
			b.Start.UTC(),
			b.End.UTC(),
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.CustomerNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *b
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		switch {
		case storage.IsExclusionViolation(err):
			return nil, ErrSlotOverlap
		case storage.IsForeignKeyViolation(err):
			return nil, ErrCalendarMissing
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// ListByCalendar возвращает все бронирования ресурса, без фильтра по времени
func (r *Repository) ListByCalendar(ctx context.Context, calendarID int64) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"calendar_id": calendarID}).
		OrderBy("starts_at ASC", "id ASC")

	return r.list(ctx, "ListByCalendar", selectBuilder)
}

// ListByPeriod возвращает бронирования, чей интервал [start, end) пересекается с [from, to)
// Используется для дневного отчёта: окно = сутки в часовом поясе заведения
func (r *Repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Lt{"starts_at": to.UTC()}).
		Where(squirrel.Gt{"ends_at": from.UTC()}).
		OrderBy("starts_at ASC", "id ASC")

	return r.list(ctx, "ListByPeriod", selectBuilder)
}

// CountByCalendar считает бронирования, ссылающиеся на ресурс
func (r *Repository) CountByCalendar(ctx context.Context, calendarID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"calendar_id": calendarID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByCalendar - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCalendar - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Delete физически удаляет бронирование
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
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b     domain.Booking
		notes sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.CalendarID,
		&b.Start,
		&b.End,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		b.CustomerNotes = &notes.String
	}

	return &b, nil
}
