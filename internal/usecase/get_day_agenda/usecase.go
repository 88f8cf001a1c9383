package get_day_agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// UseCase use case для построения агенды дня: сетка слотов, вердикты по барберам и сводки
type UseCase struct {
	barberRepo   BarberRepository
	appointments AppointmentProvider
	hours        agenda.ShopHours
	location     *time.Location
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	appointments AppointmentProvider,
	hours agenda.ShopHours,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		appointments: appointments,
		hours:        hours,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения агенды дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAgenda: validation failed: %v", err)
		return nil, err
	}

	date := dateOnly(req.Date, uc.location)
	uc.logger.Info("GetDayAgenda: user=%d, date=%s", req.UserID, date.Format(domain.DateFormat))

	startedAt := time.Now()

	// 2. Получаем текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем активных барберов
	barbers, err := uc.barberRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetDayAgenda: failed to get barbers: %v", err)
		return nil, fmt.Errorf("%w: failed to get barbers: %v", ErrInternal, err)
	}

	// Барберы без расписания или с поврежденным расписанием работают по расписанию по умолчанию
	for _, b := range barbers {
		if b.ScheduleIsDefault {
			uc.logger.Warn("GetDayAgenda: barber id=%d uses default schedule: %s", b.ID, b.ScheduleIssue)
		}
	}

	// 4. Получаем неотмененные записи дня
	day, err := uc.appointments.GetDay(ctx, date)
	if err != nil {
		uc.logger.Error("GetDayAgenda: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Пересчитываем день целиком
	dayAgenda := agenda.BuildDay(date, now, uc.hours, barbers, day.Appointments)

	// 6. Метрики
	uc.metrics.ObserveAgendaBuild(day.Source, time.Since(startedAt))
	for _, verdict := range domain.AllVerdicts {
		uc.metrics.IncVerdict(verdict.String(), dayAgenda.VerdictCounts[verdict])
	}

	uc.logger.Info("GetDayAgenda: built %d slots x %d barbers for date=%s from %s",
		len(dayAgenda.Slots), len(dayAgenda.Columns), date.Format(domain.DateFormat), day.Source)

	return &Response{
		Agenda: dayAgenda,
		Source: day.Source,
	}, nil
}
