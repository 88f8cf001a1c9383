package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentsCache "github.com/m04kA/SMC-BarberAgenda/internal/infra/cache/appointments"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// AppointmentCache интерфейс кэша снимков записей дня
type AppointmentCache interface {
	Lookup(ctx context.Context, date time.Time) (*appointmentsCache.Snapshot, error)
	Store(ctx context.Context, date time.Time, version int64, appointments []*domain.Appointment) error
	Bump(ctx context.Context, date time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик сервиса
type Metrics interface {
	IncCache(result string)
	IncAppointment(action, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
