package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberAgenda/pkg/psqlbuilder"
)

var barberColumns = []string{
	"b.id",
	"b.name",
	"b.is_active",
	"s.working_days",
	"s.lunch_break",
	"s.exceptions",
}

// Repository репозиторий барберов и их расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive возвращает активных барберов в порядке ID.
// Отсутствующее или некорректное расписание заменяется расписанием по умолчанию (Barber.ScheduleIsDefault).
func (r *Repository) GetActive(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers b").
		LeftJoin("barber_schedules s ON s.barber_id = b.id").
		Where(squirrel.Eq{"b.is_active": true}).
		OrderBy("b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetByID возвращает барбера с расписанием (или расписанием по умолчанию)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers b").
		LeftJoin("barber_schedules s ON s.barber_id = b.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return b, nil
}

// UpsertSchedule сохраняет расписание барбера целиком
func (r *Repository) UpsertSchedule(ctx context.Context, barberID int64, schedule domain.BarberSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays, lunchBreak, exceptions, err := encodeSchedule(schedule)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("barber_schedules").
		Columns("barber_id", "working_days", "lunch_break", "exceptions", "updated_at").
		Values(barberID, workingDays, lunchBreak, exceptions, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (barber_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			lunch_break = EXCLUDED.lunch_break,
			exceptions = EXCLUDED.exceptions,
			updated_at = EXCLUDED.updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var (
		b                                   domain.Barber
		workingDays, lunchBreak, exceptions []byte
	)

	if err := row.Scan(&b.ID, &b.Name, &b.IsActive, &workingDays, &lunchBreak, &exceptions); err != nil {
		return nil, err
	}

	applySchedule(&b, workingDays, lunchBreak, exceptions)

	return &b, nil
}
