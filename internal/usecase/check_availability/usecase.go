package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/barber"
)

// UseCase use case для проверки доступности одного слота барбера
type UseCase struct {
	barberRepo   BarberRepository
	appointments AppointmentProvider
	hours        agenda.ShopHours
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	appointments AppointmentProvider,
	hours agenda.ShopHours,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		appointments: appointments,
		hours:        hours,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: user=%d, barber=%d, date=%s, time=%s",
		req.UserID, req.BarberID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	slot, err := buildSlot(req.Time)
	if err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return nil, err
	}

	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CheckAvailability: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CheckAvailability: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}
	if barber.ScheduleIsDefault {
		uc.logger.Warn("CheckAvailability: barber id=%d uses default schedule: %s", barber.ID, barber.ScheduleIssue)
	}

	// 4. Получаем записи дня
	day, err := uc.appointments.GetDay(ctx, date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Вердикт по слоту
	index := agenda.NewOccupancyIndex(day.Appointments)
	verdict := agenda.Resolve(barber, date, slot.Start, index)

	resp := &Response{
		BarberID:    barber.ID,
		Date:        date,
		Slot:        slot,
		Verdict:     verdict,
		IsAvailable: verdict.IsAvailable(),
		InGrid:      inGrid(agenda.GenerateSlots(date, now, uc.hours), slot.Start),
	}
	if verdict == domain.VerdictOccupied {
		resp.Appointment = index.OwnerOf(barber.ID, slot)
	}

	uc.logger.Info("CheckAvailability: barber=%d, date=%s, time=%s -> %s (in grid: %t)",
		barber.ID, date.Format(domain.DateFormat), slot.Start, verdict, resp.InGrid)

	return resp, nil
}
