package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberAgenda/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"barber_id",
	"client_name",
	"service_name",
	"appointment_date",
	"start_hour",
	"end_hour",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей к барберам
type Repository struct {
	db     DBExecutor
	logger Logger
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, logger Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Create сохраняет запись. Начало и конец переводятся в десятичные часы.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startHour, err := toDecimalHours(appt.StartTime)
	if err != nil {
		return nil, fmt.Errorf("Create - start: %w", err)
	}
	endHour, err := toDecimalHours(appt.EndTime)
	if err != nil {
		return nil, fmt.Errorf("Create - end: %w", err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"barber_id",
			"client_name",
			"service_name",
			"appointment_date",
			"start_hour",
			"end_hour",
			"status",
		).
		Values(
			appt.BarberID,
			appt.ClientName,
			appt.ServiceName,
			appt.Date.Format(domain.DateFormat),
			startHour,
			endHour,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	if appt.StartTime.Seconds() >= appt.EndTime.Seconds() {
		return nil, fmt.Errorf("%w: appointment id=%d: start %s is not before end %s",
			ErrInvalidHours, appt.ID, appt.StartTime, appt.EndTime)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID. Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
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

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	return appt, nil
}

// GetActiveByDate получает неотмененные записи всех барберов на дату, упорядоченные по барберу и началу
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.getActive(ctx, "GetActiveByDate", squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)})
}

// GetActiveByBarberAndDate получает неотмененные записи барбера на дату.
// Внутри транзакции строки блокируются (FOR UPDATE) - используется при создании записи.
func (r *Repository) GetActiveByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error) {
	return r.getActive(ctx, "GetActiveByBarberAndDate", squirrel.Eq{
		"barber_id":        barberID,
		"appointment_date": date.Format(domain.DateFormat),
	})
}

func (r *Repository) getActive(ctx context.Context, op string, where squirrel.Eq) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		OrderBy("barber_id ASC", "start_hour ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanActive(op, rows)
}

type rowIterator interface {
	rowScanner
	Next() bool
	Err() error
}

// scanActive читает записи дня. Строка с часами, которые не переводятся в HH:MM:SS,
// пропускается с предупреждением: одна битая запись не должна ломать весь день
func (r *Repository) scanActive(op string, rows rowIterator) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if errors.Is(err, ErrInvalidHours) {
			r.logger.Warn("%s: skipping appointment row: %v", op, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует строку и переводит десятичные часы в HH:MM:SS
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt                 domain.Appointment
		startHour, endHour   float64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.BarberID,
		&appt.ClientName,
		&appt.ServiceName,
		&appt.Date,
		&startHour,
		&endHour,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan row: %w", ErrScanRow, err)
	}

	if appt.StartTime, err = fromDecimalHours(startHour); err != nil {
		return nil, fmt.Errorf("appointment id=%d start: %w", appt.ID, err)
	}
	if appt.EndTime, err = fromDecimalEndHours(endHour); err != nil {
		return nil, fmt.Errorf("appointment id=%d end: %w", appt.ID, err)
	}

	if appt.StartTime.Seconds() >= appt.EndTime.Seconds() {
		return nil, fmt.Errorf("%w: appointment id=%d: start %s is not before end %s",
			ErrInvalidHours, appt.ID, appt.StartTime, appt.EndTime)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
