package schedule

import (
	"context"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// BarberRepository интерфейс репозитория барберов и их расписаний
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	UpsertSchedule(ctx context.Context, barberID int64, schedule domain.BarberSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
