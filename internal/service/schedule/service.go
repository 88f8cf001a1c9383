package schedule

import (
	"context"
	"errors"
	"fmt"

	barberRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями барберов
type Service struct {
	barberRepo BarberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(barberRepo BarberRepository, logger Logger) *Service {
	return &Service{
		barberRepo: barberRepo,
		logger:     logger,
	}
}

// Get возвращает действующее расписание барбера.
// Отсутствующее или поврежденное расписание заменяется расписанием по умолчанию.
func (s *Service) Get(ctx context.Context, barberID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for barber=%d", barberID)

	if barberID <= 0 {
		return nil, fmt.Errorf("%w: barber id must be positive", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("Get: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Get: repository error for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if barber.ScheduleIsDefault {
		s.logger.Warn("Get: barber id=%d uses default schedule: %s", barberID, barber.ScheduleIssue)
	}

	return models.FromDomainBarber(barber), nil
}

// Update заменяет расписание барбера целиком.
// Расписание валидируется до записи: невалидные значения отклоняются, а не исправляются.
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: replacing schedule for barber=%d by user=%d", req.BarberID, req.UserID)

	// 1. Валидируем входные данные
	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barber id must be positive", ErrInvalidInput)
	}
	if err := req.Schedule.Validate(); err != nil {
		s.logger.Warn("Update: invalid schedule for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	// 2. Проверяем существование барбера
	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("Update: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Update: repository error for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 3. Сохраняем расписание
	if err := s.barberRepo.UpsertSchedule(ctx, req.BarberID, req.Schedule); err != nil {
		s.logger.Error("Update: failed to save schedule for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	barber.Schedule = req.Schedule
	barber.ScheduleIsDefault = false
	barber.ScheduleIssue = ""

	s.logger.Info("Update: successfully replaced schedule for barber=%d", req.BarberID)
	return models.FromDomainBarber(barber), nil
}
