package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarberAgenda/pkg/txmanager"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

const actionCreate = "create"

// UseCase use case для создания записи к барберу
type UseCase struct {
	barberRepo      BarberRepository
	appointmentRepo AppointmentRepository
	invalidator     DayInvalidator
	txManager       TransactionManager
	hours           agenda.ShopHours
	location        *time.Location
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	appointmentRepo AppointmentRepository,
	invalidator DayInvalidator,
	txManager TransactionManager,
	hours agenda.ShopHours,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:      barberRepo,
		appointmentRepo: appointmentRepo,
		invalidator:     invalidator,
		txManager:       txManager,
		hours:           hours,
		location:        location,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Занятость перепроверяется в сериализуемой транзакции по заблокированным записям барбера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, barber=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	result, err := uc.execute(ctx, req)
	if err != nil {
		uc.metrics.IncAppointment(actionCreate, outcomeOf(err))
		return nil, err
	}

	uc.metrics.IncAppointment(actionCreate, "ok")
	return result, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)

	// 2. Получаем текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Дата не в прошлом, сегодня время начала еще не прошло
	if err := validateBookingTime(date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
		return nil, err
	}

	// 4. Все слоты записи должны быть в сетке дня
	starts, err := coveredSlots(req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}
	if err := validateInsideGrid(starts, agenda.GenerateSlots(date, now, uc.hours)); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	startTime, endTime, err := appointmentBounds(req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 5. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CreateAppointment: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}
	if barber.ScheduleIsDefault {
		uc.logger.Warn("CreateAppointment: barber id=%d uses default schedule: %s", barber.ID, barber.ScheduleIssue)
	}

	// Переменная для хранения результата
	var created *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем неотмененные записи барбера на дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetActiveByBarberAndDate(txCtx, barber.ID, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 6.2. Каждый слот записи должен быть доступен
		index := agenda.NewOccupancyIndex(existing)
		for _, start := range starts {
			verdict := agenda.Resolve(barber, date, start, index)
			if !verdict.IsAvailable() {
				uc.logger.Warn("CreateAppointment: slot %s of barber=%d is %s", start, barber.ID, verdict)
				return fmt.Errorf("%w: %s is %s", ErrSlotNotAvailable, start, verdict)
			}
		}

		// 6.3. Интервал записи не пересекается ни с одной записью барбера, включая записи вне сетки
		if other := index.FirstOverlapping(barber.ID, startTime.Minutes(), endTime.Minutes()); other != nil {
			uc.logger.Warn("CreateAppointment: [%s, %s) of barber=%d overlaps appointment id=%d [%s, %s)",
				startTime, endTime, barber.ID, other.ID, other.StartTime, other.EndTime)
			return fmt.Errorf("%w: overlaps appointment id=%d", ErrSlotNotAvailable, other.ID)
		}

		// 6.4. Создаем запись
		appt := &domain.Appointment{
			BarberID:    barber.ID,
			ClientName:  req.ClientName,
			ServiceName: req.ServiceName,
			Date:        date,
			StartTime:   startTime,
			EndTime:     endTime,
			Status:      domain.StatusPending,
		}

		saved, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		created = saved
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrSerializationFailure):
			uc.logger.Warn("CreateAppointment: concurrent booking for barber=%d on %s: %v",
				barber.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	// 7. После коммита сбрасываем снимок записей дня
	uc.invalidator.InvalidateDay(ctx, date)

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	// Конвертируем в response
	return &Response{
		ID:              created.ID,
		BarberID:        created.BarberID,
		ClientName:      created.ClientName,
		ServiceName:     created.ServiceName,
		Date:            created.Date,
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		DurationMinutes: created.DurationMinutes(),
		Status:          string(created.Status),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// appointmentBounds переводит начало и длительность в "HH:MM:SS"
func appointmentBounds(start types.TimeString, durationMinutes int) (types.ClockTime, types.ClockTime, error) {
	end, err := types.NewTimeStringFromMinutes(start.Minutes() + durationMinutes)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	startClock, err := types.ClockTimeFromTimeString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endClock, err := types.ClockTimeFromTimeString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return startClock, endClock, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return "rejected"
	case errors.Is(err, ErrConcurrentUpdate):
		return "conflict"
	case errors.Is(err, ErrInternal):
		return "error"
	default:
		return "invalid"
	}
}
