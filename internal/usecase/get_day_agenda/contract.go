package get_day_agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentsModels "github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetActive(ctx context.Context) ([]*domain.Barber, error)
}

// AppointmentProvider источник неотмененных записей дня (кэш с откатом на БД)
type AppointmentProvider interface {
	GetDay(ctx context.Context, date time.Time) (*appointmentsModels.DayAppointments, error)
}

// Metrics интерфейс метрик построения агенды
type Metrics interface {
	ObserveAgendaBuild(source string, duration time.Duration)
	IncVerdict(verdict string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
